package dto

import "fmt"

// Categorías de importación (claves del mapa Details).
const (
	CategoryCustomers = "customers"
	CategoryBalances  = "balances"
	CategorySuppliers = "suppliers"
	CategoryItems     = "items"
)

// CategoryResult acumula el resultado de una categoría de importación.
// Los errores de fila se acumulan aquí y nunca abortan filas hermanas.
type CategoryResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors"`
}

// ImportResult es el reporte estructurado de una llamada de importación.
type ImportResult struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Details map[string]*CategoryResult `json:"details"`
}

// NewImportResult inicializa el resultado con una entrada vacía por categoría.
func NewImportResult(categories ...string) *ImportResult {
	details := make(map[string]*CategoryResult, len(categories))
	for _, c := range categories {
		details[c] = &CategoryResult{Errors: []string{}}
	}
	return &ImportResult{Details: details}
}

// AddCreated incrementa el contador de creados de la categoría.
func (r *ImportResult) AddCreated(category string) {
	r.Details[category].Created++
}

// AddError acumula un error de fila en la categoría.
func (r *ImportResult) AddError(category, msg string) {
	r.Details[category].Errors = append(r.Details[category].Errors, msg)
}

// TotalCreated suma los creados de todas las categorías.
func (r *ImportResult) TotalCreated() int {
	total := 0
	for _, d := range r.Details {
		total += d.Created
	}
	return total
}

// TotalErrors suma los errores de fila de todas las categorías.
func (r *ImportResult) TotalErrors() int {
	total := 0
	for _, d := range r.Details {
		total += len(d.Errors)
	}
	return total
}

// Finalize fija Success y Message según lo acumulado. Success exige al menos
// un registro creado (igual que el sistema original).
func (r *ImportResult) Finalize() {
	created := r.TotalCreated()
	errs := r.TotalErrors()
	r.Success = created > 0
	r.Message = fmt.Sprintf("Import completed: %d records created", created)
	if errs > 0 {
		r.Message += fmt.Sprintf(", %d errors", errs)
	}
}

// FailedImportResult construye el resultado de una falla total (libro
// malformado o error de infraestructura): success=false y details vacío.
func FailedImportResult(message string) *ImportResult {
	return &ImportResult{
		Success: false,
		Message: message,
		Details: map[string]*CategoryResult{},
	}
}
