package authz

// departmentOverride is the per-code exception entry. List-type overrides
// (IncludeOwn=true) additionally union the approver's own department;
// single-label overrides replace it outright. The asymmetry matches the
// production tables and must not be normalized away (see DESIGN.md).
type departmentOverride struct {
	Departments []string
	IncludeOwn  bool
}

var managerApproverCodes = map[string]struct{}{
	"S00002": {},
	"S00016": {},
	"S00019": {},
	"S00037": {},
	"S00045": {},
	"S00116": {},
	"S00143": {},
	"S00151": {},
	"S00510": {},
	"S00658": {},
	"S04057": {},
	"S04631": {},
	"S05777": {},
	"S08132": {},
	"S08392": {},
	"S08495": {},
	"S08547": {},
	"S09505": {},
}

var hrApproverCodes = map[string]struct{}{
	"S08046": {},
	"S09103": {},
}

var ticketDeskCodes = map[string]struct{}{
	"S09191": {},
	"S03835": {},
}

var departmentOverrides = map[string]departmentOverride{
	"S00002": {
		Departments: []string{
			"CRUSHER",
			"SECURITY",
			"WORKSHOP",
			"STORE",
			"CRM",
			"TRANSPORT",
			"STRIP MILL ELECTRICAL",
			"ACCOUNTS",
			"PURCHASE",
			"INWARD",
			"WB",
			"SMS MAINTENANCE",
			"DISPATCH",
			"CCM ELECTRICAL",
			"PC",
			"HR",
			"AUTOMATION",
			"ADMIN",
		},
		IncludeOwn: true,
	},
	"S00016": {Departments: []string{"PIPE MILL PRODUCTION"}},
	"S00019": {Departments: []string{"PIPE MILL MAINTENANCE"}},
	"S00037": {Departments: []string{"PIPE MILL ELECTRICAL"}},
	"S00045": {Departments: []string{"PIPE MILL PRODUCTION"}},
	"S00116": {
		Departments: []string{
			"CRUSHER",
			"SECURITY",
			"WORKSHOP",
			"STORE",
			"CRM",
			"TRANSPORT",
			"STRIP MILL ELECTRICAL",
			"ACCOUNTS",
			"PURCHASE",
			"INWARD",
			"WB",
			"SMS MAINTENANCE",
			"DISPATCH",
			"CCM ELECTRICAL",
			"PC",
			"HR",
			"AUTOMATION",
			"PROJECT",
		},
		IncludeOwn: true,
	},
	"S00143": {Departments: []string{"MARKETING"}},
	"S00151": {Departments: []string{"PIPE MILL PRODUCTION"}},
	"S00510": {Departments: []string{"STRIP MILL ELECTRICAL"}},
	"S00658": {Departments: []string{"SMS MAINTENANCE"}},
	"S04057": {Departments: []string{"PIPE MILL PRODUCTION"}},
	"S04631": {Departments: []string{"STRIP MILL PRODUCTION"}},
	"S05777": {Departments: []string{"SMS ELECTRICAL"}},
	"S08132": {Departments: []string{"SMS PRODUCTION"}},
	"S08392": {Departments: []string{"CCM"}},
	"S08547": {Departments: []string{"LAB AND QUALITY CONTROL"}},
}

// StaticProvider resolves approval capabilities from the hard-coded
// organization tables. Resolution is pure and deterministic.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (*StaticProvider) IsManagerApprover(code string) bool {
	_, ok := managerApproverCodes[code]
	return ok
}

func (*StaticProvider) IsHrApprover(code string) bool {
	_, ok := hrApproverCodes[code]
	return ok
}

// IsTicketDesk reports whether the code belongs to the ticket booking desk.
func (*StaticProvider) IsTicketDesk(code string) bool {
	_, ok := ticketDeskCodes[code]
	return ok
}

func (*StaticProvider) EffectiveDepartments(code, department string) []string {
	override, ok := departmentOverrides[code]
	if !ok {
		if department == "" {
			return nil
		}
		return []string{department}
	}

	if !override.IncludeOwn {
		result := make([]string, len(override.Departments))
		copy(result, override.Departments)
		return result
	}

	seen := make(map[string]struct{}, len(override.Departments)+1)
	result := make([]string, 0, len(override.Departments)+1)
	for _, dept := range override.Departments {
		if _, dup := seen[dept]; dup {
			continue
		}
		seen[dept] = struct{}{}
		result = append(result, dept)
	}
	if department != "" {
		if _, dup := seen[department]; !dup {
			result = append(result, department)
		}
	}
	return result
}
