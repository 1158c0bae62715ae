// Package forms describe formularios como listas de descriptores de campo y
// sintetiza las reglas de validación a partir del tipo declarado de cada uno.
// El llamador puede suplantar la síntesis con un conjunto de reglas propio,
// que prevalece en bloque.
package forms

import (
	"fmt"
	"net/mail"
	"strconv"
	"time"
)

// Tipo tipo cerrado de control de formulario
type Tipo int

const (
	Texto Tipo = iota
	Numero
	Email
	Password
	AreaTexto
	Seleccion
	Booleano
	Fecha
	Hora
)

// String nombre legible del tipo
func (t Tipo) String() string {
	switch t {
	case Texto:
		return "texto"
	case Numero:
		return "numero"
	case Email:
		return "email"
	case Password:
		return "password"
	case AreaTexto:
		return "area_texto"
	case Seleccion:
		return "seleccion"
	case Booleano:
		return "booleano"
	case Fecha:
		return "fecha"
	case Hora:
		return "hora"
	default:
		return "desconocido"
	}
}

// LongitudMinimaPassword mínimo sintetizado para campos de contraseña
const LongitudMinimaPassword = 6

// Opcion entrada de un control de selección
type Opcion struct {
	Valor    string
	Etiqueta string
}

// Campo descriptor de un control del formulario
type Campo struct {
	Nombre    string
	Etiqueta  string
	Tipo      Tipo
	Requerido bool
	Opciones  []Opcion // solo Seleccion
}

// Regla validación de un valor ya serializado a cadena
type Regla func(valor string) error

// Errores primer error de validación por nombre de campo
type Errores map[string]string

// Vacio indica que la validación pasó completa
func (e Errores) Vacio() bool { return len(e) == 0 }

// SintetizarReglas deriva las reglas de cada campo desde su tipo declarado
func SintetizarReglas(campos []Campo) map[string][]Regla {
	reglas := make(map[string][]Regla, len(campos))
	for _, campo := range campos {
		var rs []Regla
		if campo.Requerido {
			etiqueta := campo.Etiqueta
			rs = append(rs, func(valor string) error {
				if valor == "" {
					return fmt.Errorf("%s es obligatorio", etiqueta)
				}
				return nil
			})
		}
		switch campo.Tipo {
		case Numero:
			rs = append(rs, reglaNumero)
		case Email:
			rs = append(rs, reglaEmail)
		case Password:
			rs = append(rs, reglaPassword)
		case Fecha:
			rs = append(rs, reglaFecha)
		case Hora:
			rs = append(rs, reglaHora)
		case Seleccion:
			rs = append(rs, reglaSeleccion(campo.Opciones))
		}
		reglas[campo.Nombre] = rs
	}
	return reglas
}

// Validar aplica a los valores las reglas personalizadas si se suministran,
// o las sintetizadas en su defecto. Devuelve el primer error por campo.
func Validar(campos []Campo, valores map[string]string, personalizadas map[string][]Regla) Errores {
	reglas := personalizadas
	if reglas == nil {
		reglas = SintetizarReglas(campos)
	}

	errores := make(Errores)
	for _, campo := range campos {
		valor := valores[campo.Nombre]
		for _, regla := range reglas[campo.Nombre] {
			if err := regla(valor); err != nil {
				errores[campo.Nombre] = err.Error()
				break
			}
		}
	}
	return errores
}

// Las reglas de forma solo aplican sobre valores no vacíos; la obligatoriedad
// la cubre la regla de requerido.

func reglaNumero(valor string) error {
	if valor == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(valor, 64); err != nil {
		return fmt.Errorf("debe ser un número")
	}
	return nil
}

func reglaEmail(valor string) error {
	if valor == "" {
		return nil
	}
	if _, err := mail.ParseAddress(valor); err != nil {
		return fmt.Errorf("debe ser un correo válido")
	}
	return nil
}

func reglaPassword(valor string) error {
	if valor == "" {
		return nil
	}
	if len(valor) < LongitudMinimaPassword {
		return fmt.Errorf("debe tener al menos %d caracteres", LongitudMinimaPassword)
	}
	return nil
}

func reglaFecha(valor string) error {
	if valor == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", valor); err != nil {
		return fmt.Errorf("debe ser una fecha AAAA-MM-DD")
	}
	return nil
}

func reglaHora(valor string) error {
	if valor == "" {
		return nil
	}
	if _, err := time.Parse("15:04", valor); err != nil {
		if _, err := time.Parse("15:04:05", valor); err != nil {
			return fmt.Errorf("debe ser una hora HH:MM")
		}
	}
	return nil
}

func reglaSeleccion(opciones []Opcion) Regla {
	return func(valor string) error {
		if valor == "" {
			return nil
		}
		for _, o := range opciones {
			if o.Valor == valor {
				return nil
			}
		}
		return fmt.Errorf("no es una opción válida")
	}
}
