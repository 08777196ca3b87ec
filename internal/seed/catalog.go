package seed

import "github.com/hereisramji/atlas/internal/domain"

// Literal seed catalogs. Counts and treatment labels are study-design
// metadata, not derived values.

var cohortCatalog = []domain.Cohort{
	// Cancer cohorts
	{CohortID: 1, Indication: "Melanoma", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 76, PatientsCount: 34, AnalyzedSpecimens: 76, CellsPhenotyped: 103477921, Treatment: "Anti-PD-1 (Pembrolizumab)"},
	{CohortID: 2, Indication: "UC and Bladder", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 204, PatientsCount: 79, AnalyzedSpecimens: 204, CellsPhenotyped: 114479742, Treatment: "Anti-PD-L1 (Atezolizumab)"},
	{CohortID: 3, Indication: "Melanoma", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 468, PatientsCount: 257, AnalyzedSpecimens: 460, CellsPhenotyped: 109679499, Treatment: "Anti-PD-1 + Anti-CTLA-4 Combo"},
	{CohortID: 4, Indication: "Melanoma", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 386, PatientsCount: 142, AnalyzedSpecimens: 239, CellsPhenotyped: 122503137, Treatment: "Anti-PD-1 (Nivolumab)"},
	{CohortID: 5, Indication: "NSCLC", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 35, PatientsCount: 12, AnalyzedSpecimens: 35, CellsPhenotyped: 7379869, Treatment: "Anti-PD-1 (Pembrolizumab)"},
	{CohortID: 6, Indication: "Melanoma", DiseaseType: domain.DiseaseTypeCancer, SpecimensCount: 501, PatientsCount: 132, AnalyzedSpecimens: 501, CellsPhenotyped: 131864205, Treatment: "TIL Therapy"},

	// Autoimmune disease cohorts
	{CohortID: 7, Indication: "SLE", DiseaseType: domain.DiseaseTypeAutoimmune, SpecimensCount: 127, PatientsCount: 56, AnalyzedSpecimens: 127, CellsPhenotyped: 41258067, Treatment: "Standard of Care"},
	{CohortID: 8, Indication: "Rheumatoid Arthritis", DiseaseType: domain.DiseaseTypeAutoimmune, SpecimensCount: 185, PatientsCount: 80, AnalyzedSpecimens: 183, CellsPhenotyped: 58691224, Treatment: "JAK Inhibitor"},
	{CohortID: 9, Indication: "Lupus", DiseaseType: domain.DiseaseTypeAutoimmune, SpecimensCount: 206, PatientsCount: 89, AnalyzedSpecimens: 202, CellsPhenotyped: 64117548, Treatment: "B Cell Depletion Therapy"},
	{CohortID: 10, Indication: "Type 1 Diabetes", DiseaseType: domain.DiseaseTypeAutoimmune, SpecimensCount: 94, PatientsCount: 40, AnalyzedSpecimens: 91, CellsPhenotyped: 28825913, Treatment: "Experimental Immunotherapy"},
	{CohortID: 11, Indication: "Multiple Sclerosis", DiseaseType: domain.DiseaseTypeAutoimmune, SpecimensCount: 152, PatientsCount: 67, AnalyzedSpecimens: 148, CellsPhenotyped: 47239860, Treatment: "Anti-CD20 Therapy"},
	{CohortID: 12, Indication: "Crohn's Disease", DiseaseType: domain.DiseaseTypeAutoimmune, SpecimensCount: 178, PatientsCount: 74, AnalyzedSpecimens: 172, CellsPhenotyped: 53772101, Treatment: "Anti-TNF Therapy"},
}

// timepointCatalog is the unified vocabulary: specimen labels and the
// timepoints table share it, so trend charts and specimen lists order the
// same way.
var timepointCatalog = []domain.Timepoint{
	{TimepointID: 1, Name: "Baseline", SortOrder: 1},
	{TimepointID: 2, Name: "C1D1", SortOrder: 2},
	{TimepointID: 3, Name: "C1D14", SortOrder: 3},
	{TimepointID: 4, Name: "C2D1", SortOrder: 4},
	{TimepointID: 5, Name: "C2D14", SortOrder: 5},
}

var specimenTypes = []string{domain.SpecimenTypeBlood, domain.SpecimenTypeTumor}

// drugClasses includes the empty string for specimens collected without a
// drug class; it maps to NULL.
var drugClasses = []string{"", "TCR", "PD-1"}

// populationCellTypes are the phenotyped populations of every specimen, in
// generation order. The last entry absorbs the percentage remainder.
var populationCellTypes = []string{
	"CD4 T Central Memory",
	"CD4 T Effector Memory",
	"CD8 T Central Memory",
	"CD8 T Effector Memory",
	"NK Cells",
	"B Cells",
	"Monocytes",
	"Dendritic Cells",
}

// frequencyCellTypes are the broader categories used by the pre-aggregated
// cell_type_data catalog.
var frequencyCellTypes = []string{
	"CD8+ T Cells", "CD4+ T Cells", "Regulatory T Cells",
	"NK Cells", "B Cells", "Monocytes", "Dendritic Cells",
	"Neutrophils", "MDSC",
}

// frequencyPattern responder/non-responder frequencies per cell type, in
// frequencyCellTypes order.
type frequencyPattern struct {
	Responders    []float64
	NonResponders []float64
}

// frequencyPatterns per indication; indications without a pattern fall back
// to the Melanoma shape.
var frequencyPatterns = map[string]frequencyPattern{
	"Melanoma": {
		Responders:    []float64{0.25, 0.30, 0.06, 0.12, 0.10, 0.08, 0.04, 0.03, 0.02},
		NonResponders: []float64{0.15, 0.25, 0.10, 0.08, 0.12, 0.12, 0.03, 0.07, 0.08},
	},
	"NSCLC": {
		Responders:    []float64{0.22, 0.28, 0.05, 0.15, 0.12, 0.07, 0.05, 0.04, 0.02},
		NonResponders: []float64{0.12, 0.22, 0.09, 0.10, 0.14, 0.13, 0.04, 0.08, 0.08},
	},
	"UC and Bladder": {
		Responders:    []float64{0.24, 0.26, 0.04, 0.14, 0.13, 0.08, 0.05, 0.04, 0.02},
		NonResponders: []float64{0.14, 0.20, 0.11, 0.09, 0.15, 0.11, 0.04, 0.07, 0.09},
	},
	"SLE": {
		Responders:    []float64{0.18, 0.32, 0.12, 0.08, 0.15, 0.05, 0.05, 0.03, 0.02},
		NonResponders: []float64{0.15, 0.25, 0.14, 0.07, 0.18, 0.06, 0.04, 0.06, 0.05},
	},
	"Rheumatoid Arthritis": {
		Responders:    []float64{0.16, 0.30, 0.10, 0.09, 0.16, 0.08, 0.04, 0.05, 0.02},
		NonResponders: []float64{0.12, 0.24, 0.12, 0.08, 0.20, 0.09, 0.03, 0.07, 0.05},
	},
	"Lupus": {
		Responders:    []float64{0.17, 0.31, 0.11, 0.08, 0.17, 0.06, 0.04, 0.04, 0.02},
		NonResponders: []float64{0.14, 0.26, 0.13, 0.07, 0.19, 0.07, 0.03, 0.06, 0.05},
	},
	"Type 1 Diabetes": {
		Responders:    []float64{0.19, 0.29, 0.09, 0.10, 0.15, 0.07, 0.05, 0.04, 0.02},
		NonResponders: []float64{0.15, 0.24, 0.11, 0.08, 0.17, 0.08, 0.04, 0.06, 0.07},
	},
	"Multiple Sclerosis": {
		Responders:    []float64{0.20, 0.30, 0.08, 0.09, 0.14, 0.08, 0.05, 0.04, 0.02},
		NonResponders: []float64{0.16, 0.25, 0.12, 0.07, 0.16, 0.09, 0.04, 0.05, 0.06},
	},
	"Crohn's Disease": {
		Responders:    []float64{0.18, 0.28, 0.07, 0.10, 0.16, 0.09, 0.05, 0.05, 0.02},
		NonResponders: []float64{0.14, 0.24, 0.11, 0.08, 0.18, 0.10, 0.04, 0.06, 0.05},
	},
}

// markerRelevance maps a population cell type to the marker categories
// measured on its cells in the extended per-cell variant.
var markerRelevance = map[string][]string{
	"CD4 T Central Memory":  {"T Cell Markers", "Activation Markers", "Checkpoint Molecules"},
	"CD4 T Effector Memory": {"T Cell Markers", "Activation Markers", "Checkpoint Molecules"},
	"CD8 T Central Memory":  {"T Cell Markers", "Activation Markers", "Checkpoint Molecules"},
	"CD8 T Effector Memory": {"T Cell Markers", "Activation Markers", "Checkpoint Molecules"},
	"NK Cells":              {"NK Cell Markers", "Checkpoint Molecules", "Other Markers"},
	"B Cells":               {"B Cell Markers", "Activation Markers"},
	"Monocytes":             {"Myeloid Cell Markers", "Other Markers"},
	"Dendritic Cells":       {"Myeloid Cell Markers", "Activation Markers"},
}
