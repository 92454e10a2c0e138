package catalog

// DefaultCatalog returns the shop's standard service menu.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Service{
		{
			ID:          "sp-1",
			Name:        "Tempered Glass (Basic)",
			Description: "Standard 9H protection glass.",
			Price:       "$10",
			Duration:    "5 mins",
			Icon:        IconShield,
			Category:    "Protection & Accessories",
		},
		{
			ID:          "sp-2",
			Name:        "Privacy / Matte Glass",
			Description: "Anti-spy or anti-glare premium glass.",
			Price:       "$20",
			Duration:    "5 mins",
			Icon:        IconShieldCheck,
			Category:    "Protection & Accessories",
		},
		{
			ID:          "sp-3",
			Name:        "Hydrogel Film (UV Cure)",
			Description: "Self-healing film for curved screens (Samsung/Pixel).",
			Price:       "$25",
			Duration:    "10 mins",
			Icon:        IconSmartphone,
			Category:    "Protection & Accessories",
		},
		{
			ID:          "bat-1",
			Name:        "Battery Replacement (Standard)",
			Description: "Standard capacity OEM-grade battery.",
			Price:       "$60",
			Duration:    "30 mins",
			Icon:        IconBattery,
			Category:    "Power & Battery",
		},
		{
			ID:          "bat-2",
			Name:        "Battery Replacement (High Cap)",
			Description: "High capacity battery for extended life.",
			Price:       "$80",
			Duration:    "30 mins",
			Icon:        IconBatteryCharging,
			Category:    "Power & Battery",
		},
		{
			ID:          "chg-1",
			Name:        "Charging Port Service",
			Description: "Deep cleaning or flex cable replacement.",
			Price:       "$55",
			Duration:    "45 mins",
			Icon:        IconZap,
			Category:    "Power & Battery",
		},
		{
			ID:          "scr-1",
			Name:        "Screen Repair (In-Cell/LCD)",
			Description: "Budget-friendly display replacement.",
			Price:       "$90",
			Duration:    "45 mins",
			Icon:        IconSmartphone,
			Category:    "Screen & Display",
		},
		{
			ID:          "scr-2",
			Name:        "Screen Repair (Soft OLED)",
			Description: "Premium quality, original color & touch feel.",
			Price:       "$180",
			Duration:    "45 mins",
			Icon:        IconSmartphone,
			Category:    "Screen & Display",
		},
		{
			ID:          "scr-3",
			Name:        "Back Glass (Laser Removal)",
			Description: "Laser machine removal of cracked back glass.",
			Price:       "$100",
			Duration:    "3 hours",
			Icon:        IconSmartphone,
			Category:    "Screen & Display",
		},
		{
			ID:          "cam-1",
			Name:        "Camera Lens Glass Only",
			Description: "Replace cracked external lens glass.",
			Price:       "$45",
			Duration:    "30 mins",
			Icon:        IconCamera,
			Category:    "Components",
		},
		{
			ID:          "cam-2",
			Name:        "Main Camera Module",
			Description: "Fix shaking camera or black screen issues.",
			Price:       "$120+",
			Duration:    "1 hour",
			Icon:        IconCamera,
			Category:    "Components",
		},
		{
			ID:          "aud-1",
			Name:        "Speaker/Mic Cleaning",
			Description: "Restore low volume issues due to dust.",
			Price:       "$30",
			Duration:    "20 mins",
			Icon:        IconSpeaker,
			Category:    "Components",
		},
		{
			ID:          "wtr-1",
			Name:        "Water Damage Ultrasonic",
			Description: "Motherboard chemical cleaning & diagnostic.",
			Price:       "$60",
			Duration:    "24 hours",
			Icon:        IconDroplets,
			Category:    "Advanced Repair",
		},
		{
			ID:          "brd-1",
			Name:        "Board Level Repair (Start)",
			Description: "Audio IC, Power IC, Short circuit repair.",
			Price:       "$150+",
			Duration:    "3-5 days",
			Icon:        IconCpu,
			Category:    "Advanced Repair",
		},
		{
			ID:          "face-1",
			Name:        "FaceID Repair",
			Description: "Fix \"Move iPhone higher/lower\" errors.",
			Price:       "$140",
			Duration:    "1 day",
			Icon:        IconScanFace,
			Category:    "Advanced Repair",
		},
		{
			ID:          "soft-1",
			Name:        "Data Transfer / Backup",
			Description: "Move data to new device or USB drive.",
			Price:       "$50",
			Duration:    "1 hour",
			Icon:        IconHardDrive,
			Category:    "Software",
		},
		{
			ID:          "soft-2",
			Name:        "System Restore / Flash",
			Description: "Fix boot loops or software crashes.",
			Price:       "$40",
			Duration:    "1 hour",
			Icon:        IconRefreshCw,
			Category:    "Software",
		},
	})
}
