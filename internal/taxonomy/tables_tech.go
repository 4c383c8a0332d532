package taxonomy

var itTable = areaTable{
	area: AreaIT,
	specializations: []specTable{
		{SpecSoftwareDevelopment, []string{
			"Software Engineer",
			"Backend Developer",
			"Frontend Developer",
			"Full Stack Developer",
			"Mobile App Developer",
			"Embedded Software Engineer",
			"Software Architect",
		}},
		{SpecDataScience, []string{
			"Data Analyst",
			"Data Scientist",
			"Data Engineer",
			"Business Intelligence Analyst",
			"Machine Learning Engineer",
			"Analytics Manager",
		}},
		{SpecCybersecurity, []string{
			"Cybersecurity Analyst",
			"Cybersecurity Engineer",
			"Information Security Analyst",
			"Penetration Tester (Ethical Hacker)",
			"Security Architect",
			"Incident Response Specialist",
			"Chief Information Security Officer (CISO)",
		}},
		{SpecNetworkSystems, []string{
			"Network Administrator",
			"Systems Administrator",
			"Network Engineer",
			"Infrastructure Engineer",
			"Linux Administrator",
		}},
		{SpecCloudComputing, []string{
			"Cloud Engineer",
			"Cloud Architect",
			"Cloud Solutions Consultant",
			"Cloud Security Engineer",
		}},
		{SpecDatabaseAdmin, []string{
			"Database Administrator",
			"Database Developer",
			"Database Architect",
		}},
		{SpecITSupport, []string{
			"IT Support Technician",
			"Help Desk Analyst",
			"Desktop Support Engineer",
			"IT Service Desk Manager",
		}},
		{SpecITProjectManagement, []string{
			"IT Project Manager",
			"Scrum Master",
			"Product Owner",
			"Programme Manager",
			"Delivery Manager",
		}},
		{SpecWebDevelopment, []string{
			"Web Developer",
			"Web Designer",
			"UX/UI Developer",
			"WordPress Developer",
		}},
		{SpecDevOps, []string{
			"DevOps Engineer",
			"Site Reliability Engineer",
			"Platform Engineer",
			"Release Engineer",
			"Build and Automation Engineer",
		}},
	},
}

var engineeringTable = areaTable{
	area: AreaEngineering,
	specializations: []specTable{
		{SpecCivilEngineering, []string{
			"Civil Engineer",
			"Structural Engineer",
			"Site Engineer",
			"Geotechnical Engineer",
		}},
		{SpecMechanicalEngineering, []string{
			"Mechanical Engineer",
			"Design Engineer",
			"Maintenance Engineer",
			"HVAC Engineer",
		}},
		{SpecElectricalEngineering, []string{
			"Electrical Engineer",
			"Electronics Engineer",
			"Control Systems Engineer",
			"Power Systems Engineer",
		}},
		{SpecChemicalEngineering, []string{
			"Chemical Engineer",
			"Process Engineer",
			"Process Safety Engineer",
		}},
		{SpecAerospaceEngineering, []string{
			"Aerospace Engineer",
			"Avionics Engineer",
			"Stress Engineer",
		}},
		{SpecEnvironmentalEngineering, []string{
			"Environmental Engineer",
			"Water Engineer",
			"Sustainability Engineer",
		}},
	},
}

var researchTable = areaTable{
	area: AreaResearch,
	specializations: []specTable{
		{SpecScientificResearch, []string{
			"Research Assistant",
			"Research Scientist",
			"Senior Scientist",
			"Principal Investigator",
		}},
		{SpecProductDevelopment, []string{
			"Product Development Engineer",
			"R&D Engineer",
			"Innovation Manager",
		}},
		{SpecLaboratory, []string{
			"Laboratory Technician",
			"Lab Analyst",
			"Laboratory Manager",
		}},
		{SpecClinicalResearch, []string{
			"Clinical Trial Coordinator",
			"Clinical Research Associate",
			"Clinical Research Manager",
		}},
	},
}

// Quality Assurance has no specialization tier.
var qualityAssuranceTable = areaTable{
	area: AreaQualityAssurance,
	titles: []string{
		"QA Tester",
		"Manual Tester",
		"Test Analyst",
		"QA Automation Engineer",
		"Software Development Engineer in Test",
		"Performance Tester",
		"QA Lead",
		"Test Manager",
	},
}

var energyTable = areaTable{
	area: AreaEnergy,
	specializations: []specTable{
		{SpecRenewableEnergy, []string{
			"Wind Turbine Technician",
			"Solar PV Installer",
			"Renewable Energy Engineer",
			"Energy Project Developer",
		}},
		{SpecOilAndGas, []string{
			"Petroleum Engineer",
			"Drilling Engineer",
			"Offshore Technician",
			"Reservoir Engineer",
		}},
		{SpecPowerGeneration, []string{
			"Power Plant Operator",
			"Electrical Distribution Engineer",
			"Grid Control Engineer",
		}},
		{SpecEnergyEfficiency, []string{
			"Energy Assessor",
			"Energy Consultant",
			"Energy Manager",
		}},
		{SpecNuclear, []string{
			"Nuclear Engineer",
			"Reactor Operator",
			"Radiation Protection Adviser",
		}},
	},
}
