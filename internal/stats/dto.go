package stats

// CommitteeRoles are the job columns of the administrative report.
var CommitteeRoles = []string{"위원장", "부위원장", "부장", "차장", "회계", "서기"}

// ChoralRow is one choir/team row of the choral report.
type ChoralRow struct {
	OrgUnitID string `json:"orgUnitId,omitempty"`
	Name      string `json:"name"`
	Soprano   int    `json:"soprano"`
	Alto      int    `json:"alto"`
	Tenor     int    `json:"tenor"`
	Bass      int    `json:"bass"`
	Total     int    `json:"total"`
}

type ChoralReport struct {
	Units      []ChoralRow `json:"units"`
	GrandTotal ChoralRow   `json:"grandTotal"`
}

// CommitteeRow is one committee row; Counts is keyed by CommitteeRoles.
type CommitteeRow struct {
	OrgUnitID string         `json:"orgUnitId,omitempty"`
	Name      string         `json:"name"`
	Counts    map[string]int `json:"counts"`
	Total     int            `json:"total"`
}

type CommitteeReport struct {
	Units      []CommitteeRow `json:"units"`
	GrandTotal CommitteeRow   `json:"grandTotal"`
}
