package forms

import (
	"errors"
	"testing"
)

func camposPrueba() []Campo {
	return []Campo{
		{Nombre: "nombre", Etiqueta: "Nombre", Tipo: Texto, Requerido: true},
		{Nombre: "capacidad", Etiqueta: "Capacidad", Tipo: Numero},
		{Nombre: "email", Etiqueta: "Correo", Tipo: Email},
		{Nombre: "password", Etiqueta: "Contraseña", Tipo: Password, Requerido: true},
		{Nombre: "tipo", Etiqueta: "Tipo", Tipo: Seleccion, Opciones: []Opcion{
			{Valor: "teorica", Etiqueta: "Teórica"},
			{Valor: "laboratorio", Etiqueta: "Laboratorio"},
		}},
		{Nombre: "inicio", Etiqueta: "Hora de inicio", Tipo: Hora},
	}
}

func TestValidarRequerido(t *testing.T) {
	errores := Validar(camposPrueba(), map[string]string{
		"password": "secreto1",
	}, nil)
	if _, ok := errores["nombre"]; !ok {
		t.Error("esperaba error en el campo requerido vacío")
	}
	if _, ok := errores["capacidad"]; ok {
		t.Error("un campo opcional vacío no debe fallar")
	}
}

func TestValidarFormas(t *testing.T) {
	valores := map[string]string{
		"nombre":    "Aula 1",
		"capacidad": "treinta",
		"email":     "sin-arroba",
		"password":  "abc",
		"tipo":      "inexistente",
		"inicio":    "99:99",
	}
	errores := Validar(camposPrueba(), valores, nil)
	for _, campo := range []string{"capacidad", "email", "password", "tipo", "inicio"} {
		if _, ok := errores[campo]; !ok {
			t.Errorf("esperaba error de forma en %q", campo)
		}
	}
}

func TestValidarTodoCorrecto(t *testing.T) {
	valores := map[string]string{
		"nombre":    "Aula 1",
		"capacidad": "30",
		"email":     "coordinacion@uni.edu.ve",
		"password":  "secreto1",
		"tipo":      "laboratorio",
		"inicio":    "07:30",
	}
	errores := Validar(camposPrueba(), valores, nil)
	if !errores.Vacio() {
		t.Errorf("esperaba validación limpia, obtuve %v", errores)
	}
}

func TestReglasPersonalizadasPrevalecenEnBloque(t *testing.T) {
	campos := camposPrueba()
	personalizadas := map[string][]Regla{
		"capacidad": {func(valor string) error {
			if valor != "42" {
				return errors.New("la capacidad debe ser 42")
			}
			return nil
		}},
	}

	// Con reglas propias, la síntesis no aplica: el requerido "nombre"
	// vacío pasa porque el conjunto personalizado no lo cubre.
	errores := Validar(campos, map[string]string{"capacidad": "30"}, personalizadas)
	if _, ok := errores["nombre"]; ok {
		t.Error("las reglas sintetizadas no deben aplicarse junto a las personalizadas")
	}
	if _, ok := errores["capacidad"]; !ok {
		t.Error("esperaba el error de la regla personalizada")
	}
}

func TestSintetizarReglasPorTipo(t *testing.T) {
	reglas := SintetizarReglas(camposPrueba())
	if len(reglas["password"]) != 2 {
		t.Errorf("password requerido: esperaba 2 reglas, obtuve %d", len(reglas["password"]))
	}
	if len(reglas["capacidad"]) != 1 {
		t.Errorf("numero opcional: esperaba 1 regla, obtuve %d", len(reglas["capacidad"]))
	}
}
