package domain

// ActKind selects the dispatch variant for act bookmarks.
type ActKind string

const (
	ActCentral ActKind = "central"
	ActState   ActKind = "state"
)

// MappingKind is the explicit discriminant carried by mapping records,
// matching the shortened bookmark type aliases.
type MappingKind string

const (
	MappingBSAIEA   MappingKind = "bsa_iea"
	MappingBNSIPC   MappingKind = "bns_ipc"
	MappingBNSSCrPC MappingKind = "bnss_crpc"
)

// Item is the union of content items a bookmark can point at. Exactly one
// of the variant field groups is populated depending on the bookmark type.
type Item struct {
	ID ItemID `json:"id"`

	// Judgment fields
	Title        string   `json:"title,omitempty"`
	CaseTitle    string   `json:"case_title,omitempty"`
	Court        string   `json:"court,omitempty"`
	DecisionDate string   `json:"decision_date,omitempty"`
	Judges       []string `json:"judges,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Citation     string   `json:"citation,omitempty"`

	// Act fields
	ActID           ItemID `json:"act_id,omitempty"`
	ShortTitle      string `json:"short_title,omitempty"`
	LongTitle       string `json:"long_title,omitempty"`
	Ministry        string `json:"ministry,omitempty"`
	Department      string `json:"department,omitempty"`
	State           string `json:"state,omitempty"`
	Year            string `json:"year,omitempty"`
	EnactmentDate   string `json:"enactment_date,omitempty"`
	EnforcementDate string `json:"enforcement_date,omitempty"`

	// Mapping fields. MappingType is the explicit discriminant carried by
	// the API response; it is never inferred from which section fields
	// happen to be present.
	MappingType       MappingKind `json:"mapping_type,omitempty" validate:"omitempty,oneof=bsa_iea bns_ipc bnss_crpc"`
	Subject           string      `json:"subject,omitempty"`
	SourceSection     string      `json:"source_section,omitempty"`
	TargetSection     string      `json:"target_section,omitempty"`
	SourceDescription string      `json:"source_description,omitempty"`
	TargetDescription string      `json:"target_description,omitempty"`

	PDFURL string `json:"pdf_url,omitempty"`
}

// MappingTypeFor translates a mapping kind back to its declared bookmark
// type.
func MappingTypeFor(kind MappingKind) (BookmarkType, bool) {
	switch kind {
	case MappingBSAIEA:
		return TypeBSAIEAMapping, true
	case MappingBNSIPC:
		return TypeBNSIPCMapping, true
	case MappingBNSSCrPC:
		return TypeBNSSCrPCMapping, true
	}
	return "", false
}
