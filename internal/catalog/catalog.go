package catalog

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Icon is the closed set of symbols a catalog service can reference.
// Service definitions name icons as strings; ParseIcon maps those names
// into the set with a fixed fallback so an unknown name can never reach a
// renderer unmapped.
type Icon string

const (
	IconShield          Icon = "Shield"
	IconShieldCheck     Icon = "ShieldCheck"
	IconSmartphone      Icon = "Smartphone"
	IconBattery         Icon = "Battery"
	IconBatteryCharging Icon = "BatteryCharging"
	IconZap             Icon = "Zap"
	IconCamera          Icon = "Camera"
	IconSpeaker         Icon = "Speaker"
	IconDroplets        Icon = "Droplets"
	IconCpu             Icon = "Cpu"
	IconScanFace        Icon = "ScanFace"
	IconHardDrive       Icon = "HardDrive"
	IconRefreshCw       Icon = "RefreshCw"

	// IconWrench is the fallback for unknown icon names.
	IconWrench Icon = "Wrench"
)

var iconGlyphs = map[Icon]string{
	IconShield:          "[shield]",
	IconShieldCheck:     "[shield+]",
	IconSmartphone:      "[phone]",
	IconBattery:         "[batt]",
	IconBatteryCharging: "[batt+]",
	IconZap:             "[zap]",
	IconCamera:          "[cam]",
	IconSpeaker:         "[spk]",
	IconDroplets:        "[drop]",
	IconCpu:             "[cpu]",
	IconScanFace:        "[face]",
	IconHardDrive:       "[disk]",
	IconRefreshCw:       "[sync]",
	IconWrench:          "[wrench]",
}

func ParseIcon(name string) Icon {
	icon := Icon(name)
	if _, ok := iconGlyphs[icon]; ok && icon != IconWrench {
		return icon
	}
	return IconWrench
}

// Glyph returns the rendering primitive for an icon. Icons outside the set
// render as the fallback glyph.
func (i Icon) Glyph() string {
	if glyph, ok := iconGlyphs[i]; ok {
		return glyph
	}
	return iconGlyphs[IconWrench]
}

// Service is a read-only catalog offering. Price is the display string as
// shown to operators; ParsePrice extracts the numeric value when a service
// is converted into a cart line.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Icon        Icon   `json:"icon"`
	Category    string `json:"category,omitempty"`
}

var priceToken = regexp.MustCompile(`(\d+(\.\d+)?)`)

// ParsePrice extracts the first embedded numeric token from a display price
// string. "$120+" parses as 120; a string with no numeric token is worth 0.
func ParsePrice(display string) decimal.Decimal {
	match := priceToken.FindString(display)
	if match == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// Catalog is an injected read-only repository of service offerings.
type Catalog struct {
	services []Service
}

func NewCatalog(services []Service) *Catalog {
	owned := make([]Service, len(services))
	copy(owned, services)
	return &Catalog{services: owned}
}

func (c *Catalog) All() []Service {
	services := make([]Service, len(c.services))
	copy(services, c.services)
	return services
}

func (c *Catalog) FindByID(id string) (Service, bool) {
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// ByIDs resolves a selection of service IDs in request order, skipping
// unknown IDs.
func (c *Catalog) ByIDs(ids []string) []Service {
	selected := make([]Service, 0, len(ids))
	for _, id := range ids {
		if svc, ok := c.FindByID(id); ok {
			selected = append(selected, svc)
		}
	}
	return selected
}

type CategoryGroup struct {
	Category string    `json:"category"`
	Services []Service `json:"services"`
}

// Grouped buckets services by category, preserving stored order both across
// and within groups. Services without a category land in "Other".
func (c *Catalog) Grouped() []CategoryGroup {
	var groups []CategoryGroup
	index := map[string]int{}

	for _, svc := range c.services {
		cat := svc.Category
		if cat == "" {
			cat = "Other"
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Services = append(groups[i].Services, svc)
	}
	return groups
}
