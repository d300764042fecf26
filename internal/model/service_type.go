package model

// ServiceType classifies why a message is sent to a customer. The set is
// closed; the Arabic labels are stored and transmitted verbatim because the
// rest of the system (templates table, frontend filters) keys on them.
type ServiceType string

const (
	ServiceTypeSale              ServiceType = "مبيع"
	ServiceTypeRepairFixed       ServiceType = "صيانة يصلح"
	ServiceTypeRepairUnfixed     ServiceType = "صيانة لا يصلح"
	ServiceTypeMaintenanceReport ServiceType = "رسالة اكتمال تقرير الصيانة"
)

// ServiceTypes returns every recognized service type.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeSale,
		ServiceTypeRepairFixed,
		ServiceTypeRepairUnfixed,
		ServiceTypeMaintenanceReport,
	}
}

// Valid reports whether s is a member of the closed set.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeSale, ServiceTypeRepairFixed, ServiceTypeRepairUnfixed, ServiceTypeMaintenanceReport:
		return true
	}
	return false
}

func (s ServiceType) String() string {
	return string(s)
}
