package navigator

import (
	"strings"
	"testing"

	"github.com/itsmostafa/docnav/internal/config"
	"github.com/itsmostafa/docnav/internal/outline"
)

const storeDocText = `# Tienda Aurelion

## Información general

Tienda de barrio.

## Dataset de referencia

Cuatro tablas.

### Tabla clientes

id, nombre

## Programa Interactivo

### Pasos

1. Leer

### Pseudocódigo

INICIO

### Diagrama de flujo

graph TD

# Sugerencias Copilot

## Mejoras

Usar clases.

### Detalle

Más texto.
`

func newSession(t *testing.T, text string) *Session {
	t.Helper()
	return &Session{
		Doc:    outline.New(text),
		Topics: config.DefaultTopics(),
	}
}

// without drops every line containing any of the given fragments.
func without(text string, fragments ...string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		drop := false
		for _, f := range fragments {
			if strings.Contains(line, f) {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
