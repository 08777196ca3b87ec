package seed

// Super Panel v5 marker catalog: category ordering matches the panel sheet.

type markerCategory struct {
	Name    string
	Markers []string
}

var markerCategories = []markerCategory{
	{"T Cell Markers", []string{"CD3", "CD4", "CD8a", "CD27", "CD28", "CD45RA", "CD127", "Foxp3", "CD25", "gdTCR"}},
	{"Activation Markers", []string{"CD69", "CD95", "Ki67", "ICOS", "CD38", "HLA-DR"}},
	{"Checkpoint Molecules", []string{"PD-1", "PD-L1", "CTLA-4", "TIM3", "LAG-3", "TIGIT"}},
	{"NK Cell Markers", []string{"CD56", "CD16", "CD57", "KLRG-1"}},
	{"Myeloid Cell Markers", []string{"CD11b", "CD11c", "CD14", "CD33", "CD66b", "CD86", "CD123", "LOX-1", "CD15"}},
	{"B Cell Markers", []string{"CD19", "CD74", "IgG4"}},
	{"Other Markers", []string{"CD45", "CD161", "CD39", "GranzymeB", "Tbet", "CCR7"}},
}

var markerDescriptions = map[string]string{
	"CD45":      "Common leukocyte antigen, expressed on all hematopoietic cells except mature erythrocytes and platelets.",
	"CD8a":      "Co-receptor for MHC Class I-restricted T cell activation, primarily on cytotoxic T cells.",
	"CD33":      "Sialic acid-binding immunoglobulin-like lectin expressed on myeloid cells and some lymphoid cells.",
	"HLA-DR":    "MHC Class II cell surface receptor, important for antigen presentation to CD4+ T cells.",
	"CD66b":     "Granulocyte activation marker, primarily expressed on neutrophils.",
	"CD57":      "Marker associated with terminally differentiated or senescent NK and T cells.",
	"KLRG-1":    "Killer cell lectin-like receptor G1, indicates terminally differentiated T cells and NK cells.",
	"CD3":       "T cell co-receptor, part of the T cell receptor complex essential for T cell activation.",
	"CD19":      "B cell co-receptor, important for B cell development and activation.",
	"CD69":      "Early activation marker expressed on activated lymphocytes and NK cells.",
	"GranzymeB": "Serine protease released by cytotoxic T cells and NK cells, mediates apoptosis in target cells.",
	"CD4":       "Co-receptor for MHC Class II-restricted T cell activation, primarily on helper T cells.",
	"CD11b":     "Integrin alpha M, expressed on myeloid cells, mediates leukocyte adhesion and migration.",
	"CD11c":     "Integrin alpha X, highly expressed on dendritic cells and some myeloid populations.",
	"CD14":      "Co-receptor for bacterial lipopolysaccharide detection, primarily on monocytes and macrophages.",
	"TIGIT":     "T cell immunoreceptor with Ig and ITIM domains, inhibitory checkpoint on T cells and NK cells.",
	"CD86":      "Co-stimulatory molecule on antigen-presenting cells, binds CD28 for T cell activation.",
	"CD123":     "IL-3 receptor alpha chain, expressed on basophils, plasmacytoid DCs, and some leukemic cells.",
	"gdTCR":     "Gamma delta T cell receptor, defines a subset of T cells with distinct antigen recognition.",
	"CD45RA":    "Isoform of CD45, expressed on naive T cells and terminally differentiated effector cells.",
	"TIM3":      "T cell immunoglobulin and mucin domain-3, inhibitory receptor associated with T cell exhaustion.",
	"CD95":      "Fas receptor, mediates apoptosis upon binding to Fas ligand.",
	"PD-L1":     "Programmed death-ligand 1, binds to PD-1 to inhibit T cell activity, often upregulated in tumors.",
	"CCR7":      "Chemokine receptor important for lymphocyte trafficking to lymph nodes, marks central memory T cells.",
	"CD27":      "Co-stimulatory protein of the TNF-receptor superfamily, important for T and B cell activation.",
	"CD39":      "Ectonucleotidase that degrades ATP, often expressed on regulatory T cells and activated T cells.",
	"Tbet":      "T-box transcription factor, master regulator of Th1 cell development and function.",
	"CTLA-4":    "Cytotoxic T-lymphocyte-associated protein 4, inhibitory checkpoint that downregulates T cell activation.",
	"Foxp3":     "Transcription factor essential for regulatory T cell development and function.",
	"CD28":      "Co-stimulatory receptor on T cells that binds CD80/CD86 for T cell activation.",
	"CD161":     "C-type lectin receptor, expressed on NK cells and subsets of T cells including Th17 cells.",
	"CD127":     "IL-7 receptor alpha chain, important for T cell development and homeostasis.",
	"CD74":      "MHC Class II invariant chain, involved in antigen presentation and cell signaling.",
	"CD25":      "IL-2 receptor alpha chain, upregulated on activated T cells and constitutively expressed on Tregs.",
	"Ki67":      "Nuclear protein associated with cellular proliferation, marks actively dividing cells.",
	"ICOS":      "Inducible T cell co-stimulator, important for T cell activation and effector function.",
	"LOX-1":     "Lectin-like oxidized LDL receptor 1, expressed on endothelial cells, macrophages, and dendritic cells.",
	"CD15":      "Lewis X carbohydrate adhesion molecule, expressed on neutrophils and some myeloid cells.",
	"CD38":      "Cyclic ADP ribose hydrolase, expressed on activated lymphocytes and plasma cells.",
	"IgG4":      "Immunoglobulin G subclass 4, associated with tolerance in chronic antigen exposure.",
	"PD-1":      "Programmed cell death protein 1, inhibitory checkpoint receptor expressed on activated T cells.",
	"LAG-3":     "Lymphocyte-activation gene 3, inhibitory receptor that binds MHC class II molecules.",
	"CD56":      "Neural cell adhesion molecule, expressed on NK cells and some T cell subsets.",
	"CD16":      "Fc gamma receptor III, mediates antibody-dependent cellular cytotoxicity, primarily on NK cells.",
}
