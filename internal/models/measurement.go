package models

// Measurement is a saved protein concentration measurement (A280 method).
type Measurement struct {
	ID                    string  `json:"id"`
	UserID                int64   `json:"user_id"`
	ProteinName           string  `json:"protein_name"`
	Date                  string  `json:"date"`
	Absorbance280         float64 `json:"absorbance_280"`
	ExtinctionCoefficient float64 `json:"extinction_coefficient"`
	MolecularWeight       float64 `json:"molecular_weight"`
	PathLength            float64 `json:"path_length"`
	Concentration         float64 `json:"concentration"`
	ConcentrationMolar    float64 `json:"concentration_molar"`
	Notes                 string  `json:"notes,omitempty"`
	Sequence              string  `json:"sequence,omitempty"`
	BatchNumber           string  `json:"batch_number,omitempty"`
}
