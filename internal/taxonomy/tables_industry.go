package taxonomy

var hospitalityTable = areaTable{
	area: AreaHospitality,
	specializations: []specTable{
		{SpecHotelOperations, []string{
			"Hotel Receptionist",
			"Concierge",
			"Night Auditor",
			"Front of House Manager",
			"Hotel Manager",
		}},
		{SpecFoodAndBeverage, []string{
			"Waiter / Waitress",
			"Barista",
			"Bartender",
			"Sommelier",
			"Restaurant Manager",
		}},
		{SpecCulinary, []string{
			"Commis Chef",
			"Chef de Partie",
			"Pastry Chef",
			"Sous Chef",
			"Head Chef",
		}},
		{SpecEventsCatering, []string{
			"Events Coordinator",
			"Banqueting Supervisor",
			"Catering Manager",
		}},
		{SpecHousekeeping, []string{
			"Room Attendant",
			"Housekeeping Supervisor",
			"Executive Housekeeper",
		}},
	},
}

// Public Sector specializations have no title lists yet; they show up in Gaps.
var publicSectorTable = areaTable{
	area: AreaPublicSector,
	specializations: []specTable{
		{SpecCentralGovernment, nil},
		{SpecLocalGovernment, nil},
		{SpecPublicPolicy, nil},
		{SpecEmergencyServices, nil},
		{SpecEducationAdmin, nil},
		{SpecPublicHealthService, nil},
	},
}

var manufacturingTable = areaTable{
	area: AreaManufacturing,
	specializations: []specTable{
		{SpecProduction, []string{
			"Production Operative",
			"Machine Operator",
			"Production Supervisor",
			"Production Manager",
		}},
		{SpecQualityControl, []string{
			"Quality Inspector",
			"Quality Control Technician",
			"Quality Manager",
		}},
		{SpecSupplyChain, []string{
			"Logistics Coordinator",
			"Procurement Officer",
			"Supply Chain Analyst",
			"Production Planner",
			"Warehouse Manager",
		}},
		{SpecMaintenance, []string{
			"Maintenance Technician",
			"Multi-skilled Engineer",
			"Maintenance Manager",
		}},
		{SpecContinuousImprovement, []string{
			"Continuous Improvement Engineer",
			"Lean Manufacturing Specialist",
			"Operational Excellence Manager",
		}},
	},
}

var pharmaTable = areaTable{
	area: AreaPharma,
	specializations: []specTable{
		{SpecRegulatoryAffairs, []string{
			"Regulatory Affairs Associate",
			"Regulatory Affairs Manager",
			"Regulatory Affairs Director",
		}},
		{SpecPharmacovigilance, []string{
			"Drug Safety Associate",
			"Pharmacovigilance Scientist",
			"Pharmacovigilance Manager",
		}},
		{SpecMedicalAffairs, []string{
			"Medical Science Liaison",
			"Medical Advisor",
			"Medical Affairs Manager",
		}},
		{SpecPharmaManufacturing, []string{
			"GMP Operator",
			"Validation Engineer",
			"Qualified Person (QP)",
		}},
		{SpecPharmaSales, []string{
			"Medical Sales Representative",
			"Key Account Manager (Pharma)",
			"Market Access Manager",
		}},
	},
}
