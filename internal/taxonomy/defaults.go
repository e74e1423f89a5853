package taxonomy

// Default returns the compiled-in taxonomy used when no taxonomy file is
// configured. It mirrors the curated distributor vendor list and keyword
// tables maintained by the sales team.
func Default() *Taxonomy {
	return &Taxonomy{
		MainVendors: []string{
			"S4 Bollards",
			"Handle-It",
			"Casters",
			"Lincoln Industrial",
			"Noblelift",
			"B&P Manufacturing",
			"Dutro",
			"Reliance Foundry",
			"Ekko Lifts",
			"Adrian's Safety Solutions",
			"Sentry Protection Products",
			"Little Giant",
			"Merrick Machine",
			"Wesco",
			"Valley Craft",
			"Bluff Manufacturing",
			"Meco-Omaha",
			"Apollo Forklift",
		},
		OtherVendors: []string{
			"ANNT Bollards",
			"Luxor",
			"Durable Superior Casters",
			"Ravas",
			"Electro Kinetic Technologies",
			"R&B Wire",
			"Suncast",
		},
		VendorAliases: map[string]string{
			"Durable Superior Casters": "Casters",
			"Caster Depot":             "Casters",
			"Colson":                   "Casters",
			"DH International":         "Casters",
			"Handle It":                "Handle-It",
			"HandleIt":                 "Handle-It",
			"Adrian":                   "Adrian's Safety Solutions",
			"Adrians":                  "Adrian's Safety Solutions",
			"Sentry":                   "Sentry Protection Products",
			"Bluff":                    "Bluff Manufacturing",
			"Reliance":                 "Reliance Foundry",
		},
		VendorRules: defaultVendorRules(),
		Categories:  defaultCategories(),
	}
}

// defaultVendorRules lists the SKU-prefix and title-substring rules in
// priority order. Specific SKU prefixes come before the broad 02/03/04
// families so that e.g. 0244 resolves to Electro Kinetic rather than Ekko.
func defaultVendorRules() []VendorRule {
	return []VendorRule{
		{Vendor: "Lincoln Industrial", SKUPrefix: []string{"1426"}, TitleAny: []string{"lincoln"}},
		{Vendor: "Luxor", SKUPrefix: []string{"00-"}, TitleAny: []string{"luxor"}},
		{Vendor: "ANNT Bollards", SKUContains: []string{"ANNT", "BDB"}, TitleAny: []string{"annt", "coreflex"}},
		{Vendor: "Ekko Lifts", SKUContains: []string{"E50"}, TitleAny: []string{"ekko"}},
		{Vendor: "Casters", SKUPrefix: []string{"01HR", "01PO", "03MA", "03PO", "04MA"}},
		{Vendor: "Electro Kinetic Technologies", SKUPrefix: []string{"0244", "0845"}},
		{Vendor: "Ekko Lifts", SKUPrefix: []string{"02", "03", "04"}},
		{Vendor: "Ravas", TitleAny: []string{"ravas"}},
		{Vendor: "Handle-It", TitleAllCase: []string{"Handle", "It"}},
		{Vendor: "Noblelift", TitleAny: []string{"noblelift"}, TitleAnyCase: []string{"EDGE"}},
		{Vendor: "B&P Manufacturing", TitleAny: []string{"b&p", "b & p"}},
		{Vendor: "Dutro", TitleAny: []string{"dutro"}},
		{Vendor: "Reliance Foundry", TitleAny: []string{"reliance"}},
		{Vendor: "Adrian's Safety Solutions", TitleAny: []string{"adrian"}},
		{Vendor: "Sentry Protection Products", TitleAny: []string{"sentry"}},
		{Vendor: "Little Giant", TitleAny: []string{"little giant"}},
		{Vendor: "Merrick Machine", TitleAny: []string{"merrick"}},
		{Vendor: "Wesco", TitleAny: []string{"wesco"}},
		{Vendor: "Valley Craft", TitleAny: []string{"valley craft"}},
		{Vendor: "Bluff Manufacturing", TitleAny: []string{"bluff"}},
		{Vendor: "Meco-Omaha", TitleAny: []string{"meco", "omaha"}},
		{Vendor: "Apollo Forklift", TitleAny: []string{"apollo"}},
		{Vendor: "S4 Bollards", TitleAny: []string{"s4 bollard", "source 4 bollard"}},
		{Vendor: "Casters", TitleAny: []string{"caster depot", "colson", "dh international"}},
		{Vendor: "R&B Wire", TitleAny: []string{"r&b wire", "r & b wire", "utility cart"}},
	}
}

// defaultCategories is the keyword taxonomy, organized main vendor by main
// vendor. Categories shared between vendor lines (Carts, Dollies,
// Accessories, Other) are listed once with their keyword unions.
func defaultCategories() []Category {
	return []Category{
		// Bollards (S4 Bollards, Reliance Foundry)
		{Name: "Bollard Covers", Keywords: []string{"bollard cover", "cover"}},
		{Name: "Crash Rated Bollards", Keywords: []string{"crash rated", "k4", "k8", "k12", "crash test"}},
		{Name: "Fixed Bollards", Keywords: []string{"fixed bollard", "permanent bollard", "embedded"}},
		{Name: "Flexible Bollards", Keywords: []string{"flexible bollard", "flex post", "spring bollard"}},
		{Name: "Removable Bollards", Keywords: []string{"removable bollard", "lift out", "key lock"}},
		{Name: "Retractable Bollards", Keywords: []string{"retractable bollard", "automatic bollard", "hydraulic bollard"}},
		{Name: "Decorative Bollards", Keywords: []string{"decorative bollard", "ornamental"}},
		{Name: "Fold Down Bollards", Keywords: []string{"fold down", "folding bollard"}},

		// Handle-It
		{Name: "Floor Mounted Barrier", Keywords: []string{"floor mounted barrier", "barrier system"}},
		{Name: "Forklift Wheel Stops", Keywords: []string{"wheel stop", "forklift stop", "parking stop"}},
		{Name: "Guard Rail", Keywords: []string{"guard rail", "guardrail", "safety rail", "railing"}},
		{Name: "Rack Protection", Keywords: []string{"rack protector", "column protector", "pallet rack"}},
		{Name: "Stretch Wrap Machines", Keywords: []string{"stretch wrap", "wrapper", "wrapping machine"}},

		// Casters
		{Name: "Bellman Casters", Keywords: []string{"bellman", "hospitality caster"}},
		{Name: "Gate Casters", Keywords: []string{"gate caster", "gate wheel"}},
		{Name: "General Casters", Keywords: []string{"caster", "wheel", "swivel", "rigid", "brake"}},
		{Name: "Heavy Duty / Container", Keywords: []string{"heavy duty caster", "container caster", "capacity"}},
		{Name: "High Temp Casters", Keywords: []string{"high temp", "high temperature", "heat resistant"}},
		{Name: "Leveling Casters", Keywords: []string{"leveling", "leveling foot"}},

		// Lincoln Industrial
		{Name: "Air Motors", Keywords: []string{"air motor", "pneumatic motor"}},
		{Name: "Hoses", Keywords: []string{"hose", "fluid hose", "grease hose"}},
		{Name: "Kits", Keywords: []string{"kit", "grease kit", "lubrication kit"}},
		{Name: "Pumps", Keywords: []string{"pump", "grease pump", "fluid pump"}},
		{Name: "Quicklub", Keywords: []string{"quicklub", "quick lub"}},

		// Noblelift
		{Name: "Battery, Charger, Accessories", Keywords: []string{"battery", "charger", "charging"}},
		{Name: "Bigger Electric Equipment", Keywords: []string{"big joe", "bigger", "large capacity"}},
		{Name: "EDGE Powered", Keywords: []string{"edge powered"}},
		{Name: "Electric Pallet Jacks", Keywords: []string{"electric pallet jack", "powered pallet", "epj"}},
		{Name: "Manual Pallet Jacks", Keywords: []string{"manual pallet jack", "hand pallet", "mpj"}},
		{Name: "Scissor Lifts", Keywords: []string{"scissor lift", "scissor table"}},
		{Name: "Straddle Stackers", Keywords: []string{"straddle stacker", "stacker"}},

		// B&P Manufacturing
		{Name: "Aristocrat", Keywords: []string{"aristocrat"}},
		{Name: "Carts", Keywords: []string{"cart", "platform cart"}},
		{Name: "Dock Plates", Keywords: []string{"dock plate", "loading plate"}},
		{Name: "Hand Truck Accessories", Keywords: []string{"hand truck accessory", "noseplate", "extension"}},
		{Name: "Hand Trucks", Keywords: []string{"hand truck", "dolly"}},
		{Name: "Ramps", Keywords: []string{"ramp", "loading ramp", "yard ramp"}},

		// Dutro
		{Name: "Accessories", Keywords: []string{"accessory", "bracket", "strap"}},
		{Name: "Dollies", Keywords: []string{"dolly", "furniture dolly"}},
		{Name: "Mattress Moving Carts", Keywords: []string{"mattress cart", "mattress mover"}},
		{Name: "Vending Machine Trucks", Keywords: []string{"vending machine", "appliance dolly"}},

		// Ekko Lifts
		{Name: "Electric Forklifts", Keywords: []string{"electric forklift", "counterbalance"}},
		{Name: "Electric Straddle Stackers", Keywords: []string{"electric straddle"}},
		{Name: "Electric Walkie Stackers", Keywords: []string{"walkie stacker", "walkie reach"}},

		// Adrian's Safety Solutions
		{Name: "Cargo Safety", Keywords: []string{"cargo net", "cargo strap", "tie down"}},
		{Name: "Pallet Rack Safety Straps", Keywords: []string{"safety strap", "rack strap"}},
		{Name: "Pallet Rack Safety Netting", Keywords: []string{"safety net", "rack netting", "netting"}},

		// Sentry Protection Products
		{Name: "ST - Accessories", Keywords: []string{"sentry accessory", "anchor"}},
		{Name: "ST - Collision Sentry", Keywords: []string{"collision sentry", "impact protection"}},
		{Name: "ST - Column Protectors", Keywords: []string{"column protector", "post protector"}},

		// Little Giant
		{Name: "Cabinet", Keywords: []string{"cabinet", "storage cabinet"}},
		{Name: "Gas Cylinder", Keywords: []string{"gas cylinder", "cylinder truck"}},
		{Name: "Rack", Keywords: []string{"rack", "ladder rack"}},
		{Name: "Tables", Keywords: []string{"table", "work table"}},

		// Merrick Machine
		{Name: "Auto Dollies", Keywords: []string{"auto dolly", "car dolly"}},
		{Name: "Auto Rotisseries", Keywords: []string{"rotisserie", "auto rotisserie"}},
		{Name: "Flat Top Dollies", Keywords: []string{"flat top", "panel dolly"}},
		{Name: "Lifts, Rack, Stands", Keywords: []string{"lift", "stand"}},

		// Wesco
		{Name: "Accessories & Other", Keywords: []string{"accessory", "part"}},
		{Name: "Carts, Hand Trucks & Dollies", Keywords: []string{"cart", "hand truck", "dolly"}},
		{Name: "Dock Equipment", Keywords: []string{"dock", "leveler"}},
		{Name: "Drum Equipment", Keywords: []string{"drum", "barrel"}},
		{Name: "Lifts & Stackers", Keywords: []string{"lift", "stacker"}},
		{Name: "Pallet Jacks", Keywords: []string{"pallet jack"}},

		// Valley Craft
		{Name: "Cabinets & Desks", Keywords: []string{"cabinet", "desk"}},
		{Name: "Dumpers & Lifts", Keywords: []string{"dumper", "tipper"}},
		{Name: "Hand Trucks & Dollies", Keywords: []string{"hand truck", "dolly"}},

		// Bluff Manufacturing
		{Name: "Bollards & Protectors", Keywords: []string{"bollard", "protector"}},
		{Name: "Dock Boards", Keywords: []string{"dock board", "bridge plate"}},
		{Name: "Edge of Dock Levelers", Keywords: []string{"edge of dock", "eod"}},
		{Name: "Stairways", Keywords: []string{"stairway", "stairs"}},

		// Meco-Omaha
		{Name: "Cantilever", Keywords: []string{"cantilever"}},
		{Name: "Carts & Dollies", Keywords: []string{"cart", "dolly"}},
		{Name: "Hoppers", Keywords: []string{"hopper", "self dumping"}},
		{Name: "Racking", Keywords: []string{"rack", "pallet rack"}},

		// Apollo Forklift
		{Name: "AF - Electric Pallet Jacks", Keywords: []string{"electric pallet jack"}},
		{Name: "AF - Electric Stackers", Keywords: []string{"electric stacker"}},
		{Name: "AF - Manual Pallet Jacks", Keywords: []string{"manual pallet jack"}},
		{Name: "AF - Manual Stackers", Keywords: []string{"manual stacker"}},
		{Name: "AF - Order Pickers", Keywords: []string{"order picker"}},
		{Name: "AF - Scissor Lifts", Keywords: []string{"scissor lift"}},

		// Catch-alls
		{Name: "Other", Keywords: []string{"other", "adapter"}},
	}
}
