package dto

// ClassificationResponse representación HTTP de una clasificación.
type ClassificationResponse struct {
	LicenseName string `json:"license_name"`
	Category    string `json:"category"`
	Explanation string `json:"explanation"`
}

// UpdateLicenseRequest reemplazo completo de una clasificación: categoría y
// explicación viajan siempre juntas (no hay actualización parcial).
type UpdateLicenseRequest struct {
	Category    string `json:"category"`
	Explanation string `json:"explanation"`
}

// StatsResponse estadísticas agregadas del almacén.
type StatsResponse struct {
	TotalLicenses        int            `json:"total_licenses"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	Licenses             []string       `json:"licenses"`
}

// DeleteResponse confirma un borrado individual devolviendo el registro.
type DeleteResponse struct {
	Message string                 `json:"message"`
	Deleted ClassificationResponse `json:"deleted"`
}

// ClearResponse confirma el vaciado del almacén.
type ClearResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}
