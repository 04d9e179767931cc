package maintenance

// ConfirmationGate es la compuerta de confirmación previa a una operación
// destructiva. En contextos interactivos la implementa un prompt de consola;
// en contextos automatizados, un flag explícito. El caso de uso de limpieza
// nunca depende de una terminal.
type ConfirmationGate interface {
	// Confirm recibe el resumen de lo que se va a borrar y devuelve si el
	// operador aprueba. Un rechazo no es un error: es un no-op deliberado.
	Confirm(summary string) (bool, error)
}

// AutoApprove compuerta que aprueba siempre (flag --yes / usos programáticos).
type AutoApprove struct{}

// Confirm aprueba sin preguntar.
func (AutoApprove) Confirm(string) (bool, error) { return true, nil }
