package taxonomy

// Customer Service has no specialization tier.
var customerServiceTable = areaTable{
	area: AreaCustomerService,
	titles: []string{
		"Customer Service Advisor",
		"Customer Service Representative",
		"Call Centre Agent",
		"Complaints Handler",
		"Customer Success Manager",
		"Customer Service Team Leader",
		"Customer Service Manager",
	},
}

var financeTable = areaTable{
	area: AreaFinance,
	specializations: []specTable{
		{SpecAccounting, []string{
			"Accounts Assistant",
			"Accountant",
			"Management Accountant",
			"Financial Accountant",
			"Chartered Accountant",
			"Finance Manager",
		}},
		{SpecAudit, []string{
			"Audit Associate",
			"Internal Auditor",
			"External Auditor",
			"Audit Manager",
		}},
		{SpecFinancialAnalysis, []string{
			"Financial Analyst",
			"FP&A Analyst",
			"Investment Analyst",
			"Credit Analyst",
		}},
		{SpecBanking, []string{
			"Bank Teller",
			"Mortgage Advisor",
			"Loan Officer",
			"Relationship Manager",
			"Branch Manager",
		}},
		{SpecPayroll, []string{
			"Payroll Administrator",
			"Payroll Specialist",
			"Payroll Manager",
		}},
		{SpecTax, []string{
			"Tax Assistant",
			"Tax Advisor",
			"Tax Manager",
		}},
		{SpecInsurance, []string{
			"Claims Handler",
			"Insurance Underwriter",
			"Actuarial Analyst",
			"Loss Adjuster",
		}},
	},
}

var legalTable = areaTable{
	area: AreaLegal,
	specializations: []specTable{
		{SpecCorporateLaw, []string{
			"Corporate Solicitor",
			"Commercial Lawyer",
			"In-house Counsel",
			"Company Secretary",
		}},
		{SpecLitigation, []string{
			"Litigation Paralegal",
			"Litigation Solicitor",
			"Barrister",
		}},
		{SpecFamilyLaw, []string{
			"Family Law Paralegal",
			"Family Solicitor",
			"Mediator",
		}},
		{SpecPropertyLaw, []string{
			"Conveyancing Assistant",
			"Conveyancer",
			"Property Solicitor",
		}},
		{SpecEmploymentLaw, []string{
			"Employment Law Adviser",
			"Employment Solicitor",
		}},
		{SpecLegalSupport, []string{
			"Legal Assistant",
			"Legal Secretary",
			"Paralegal",
			"Legal Cashier",
		}},
	},
}

var salesTable = areaTable{
	area: AreaSales,
	specializations: []specTable{
		{SpecBusinessDevelopment, []string{
			"Business Development Representative",
			"Business Development Manager",
			"Partnerships Manager",
		}},
		{SpecAccountManagement, []string{
			"Account Executive",
			"Account Manager",
			"Key Account Manager",
			"Sales Director",
		}},
		{SpecRetailSales, []string{
			"Sales Assistant",
			"Visual Merchandiser",
			"Retail Supervisor",
			"Store Manager",
		}},
		{SpecInsideSales, []string{
			"Sales Development Representative",
			"Telesales Executive",
			"Inside Sales Manager",
		}},
		{SpecTechnicalSales, []string{
			"Sales Engineer",
			"Pre-Sales Consultant",
			"Technical Account Manager",
		}},
		{SpecFieldSales, []string{
			"Field Sales Executive",
			"Territory Manager",
			"Area Sales Manager",
		}},
	},
}

var marketingTable = areaTable{
	area: AreaMarketing,
	specializations: []specTable{
		{SpecDigitalMarketing, []string{
			"Digital Marketing Executive",
			"PPC Specialist",
			"SEO Specialist",
			"Email Marketing Manager",
			"Digital Marketing Manager",
		}},
		{SpecContent, []string{
			"Content Writer",
			"Copywriter",
			"Editor",
			"Content Strategist",
		}},
		{SpecBrandManagement, []string{
			"Brand Executive",
			"Brand Manager",
			"Head of Brand",
		}},
		{SpecSocialMedia, []string{
			"Social Media Executive",
			"Community Manager",
			"Social Media Manager",
		}},
		{SpecMarketResearch, []string{
			"Market Research Analyst",
			"Consumer Insights Analyst",
			"Insights Manager",
		}},
		{SpecPublicRelations, []string{
			"PR Executive",
			"PR Account Manager",
			"Communications Manager",
		}},
	},
}

var hrTable = areaTable{
	area: AreaHR,
	specializations: []specTable{
		{SpecRecruitment, []string{
			"Recruitment Coordinator",
			"Recruiter",
			"Talent Acquisition Partner",
			"Recruitment Manager",
		}},
		{SpecHRGeneralist, []string{
			"HR Assistant",
			"HR Advisor",
			"HR Business Partner",
			"HR Manager",
			"HR Director",
		}},
		{SpecLearningDevelopment, []string{
			"L&D Coordinator",
			"Training Officer",
			"L&D Manager",
		}},
		{SpecCompensationBenefits, []string{
			"Benefits Administrator",
			"Reward Analyst",
			"Reward Manager",
		}},
		{SpecEmployeeRelations, []string{
			"Employee Relations Advisor",
			"Employee Relations Manager",
		}},
	},
}
