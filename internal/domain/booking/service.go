package booking

type Service string

const (
	ServiceHair     Service = "HAIR"
	ServiceManicure Service = "MANICURE"
)

func ParseService(s string) (Service, bool) {
	switch v := Service(s); v {
	case ServiceHair, ServiceManicure:
		return v, true
	}
	return "", false
}
