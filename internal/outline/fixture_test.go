package outline

import "strings"

// storeDocLines mirrors the layout of a project documentation file: a title,
// level-2 topics, level-3 tables and steps, fenced code, and a trailing
// level-1 appendix with its own subsections.
var storeDocLines = []string{
	"# Tienda Aurelion",        // 0
	"",                         // 1
	"## Información general",   // 2
	"",                         // 3
	"Tienda de barrio.",        // 4
	"Vende productos.",         // 5
	"",                         // 6
	"## Dataset de referencia", // 7
	"",                         // 8
	"Cuatro tablas.",           // 9
	"",                         // 10
	"### Tabla clientes",       // 11
	"",                         // 12
	"id, nombre",               // 13
	"",                         // 14
	"### Tabla ventas",         // 15
	"",                         // 16
	"id, fecha",                // 17
	"",                         // 18
	"## Programa Interactivo",  // 19
	"",                         // 20
	"### Pasos",                // 21
	"",                         // 22
	"1. Leer",                  // 23
	"2. Mostrar",               // 24
	"",                         // 25
	"### Pseudocódigo",         // 26
	"",                         // 27
	"```",                      // 28
	"INICIO",                   // 29
	"FIN",                      // 30
	"```",                      // 31
	"",                         // 32
	"### Diagrama de flujo",    // 33
	"",                         // 34
	"```mermaid",               // 35
	"graph TD",                 // 36
	"```",                      // 37
	"",                         // 38
	"# Sugerencias Copilot",    // 39
	"",                         // 40
	"Intro.",                   // 41
	"",                         // 42
	"## Mejoras",               // 43
	"",                         // 44
	"Usar clases.",             // 45
	"",                         // 46
	"### Detalle",              // 47
	"",                         // 48
	"Más texto.",               // 49
	"",                         // 50
	"## Pruebas",               // 51
	"",                         // 52
	"Agregar tests.",           // 53
}

func storeDoc() *Document {
	return New(strings.Join(storeDocLines, "\n") + "\n")
}
