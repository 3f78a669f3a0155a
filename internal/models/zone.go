package models

// Zone is a coarse geographic bucket used only to match riders with
// deliveries. It is never used for routing or distance.
type Zone string

const (
	ZoneUttara     Zone = "Uttara"
	ZoneMirpur     Zone = "Mirpur"
	ZoneDhanmondi  Zone = "Dhanmondi"
	ZoneGulshan    Zone = "Gulshan"
	ZoneSouthDhaka Zone = "South Dhaka"
)

var allZones = []Zone{ZoneUttara, ZoneMirpur, ZoneDhanmondi, ZoneGulshan, ZoneSouthDhaka}

func ValidZone(z Zone) bool {
	for _, known := range allZones {
		if z == known {
			return true
		}
	}
	return false
}

func AllZones() []Zone {
	zones := make([]Zone, len(allZones))
	copy(zones, allZones)
	return zones
}
