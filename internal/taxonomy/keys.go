// Package taxonomy holds the static work area, specialization and job title tables
// that drive the role pickers, and the lookups over them.
package taxonomy

import "fmt"

// WorkArea is the top tier of the role cascade. The value is the display label.
type WorkArea string

// Specialization is the middle tier of the role cascade, scoped to exactly one
// WorkArea. The value is the display label.
type Specialization string

const (
	AreaIT               WorkArea = "IT"
	AreaCustomerService  WorkArea = "Customer Service"
	AreaFinance          WorkArea = "Finance"
	AreaEngineering      WorkArea = "Engineering"
	AreaHospitality      WorkArea = "Hospitality"
	AreaPublicSector     WorkArea = "Public Sector"
	AreaLegal            WorkArea = "Legal"
	AreaManufacturing    WorkArea = "Manufacturing"
	AreaResearch         WorkArea = "Research & Development"
	AreaSales            WorkArea = "Sales"
	AreaQualityAssurance WorkArea = "Quality Assurance"
	AreaMarketing        WorkArea = "Marketing"
	AreaHR               WorkArea = "Human Resources"
	AreaPharma           WorkArea = "Pharmaceuticals"
	AreaEnergy           WorkArea = "Energy"

	// AreaOther replaces every dropdown below it with a free-text input.
	AreaOther WorkArea = "Other"
)

// IT
const (
	SpecSoftwareDevelopment Specialization = "Software Development and Programming"
	SpecDataScience         Specialization = "Data Science and Analytics"
	SpecCybersecurity       Specialization = "Cybersecurity"
	SpecNetworkSystems      Specialization = "Network and Systems Administration"
	SpecCloudComputing      Specialization = "Cloud Computing"
	SpecDatabaseAdmin       Specialization = "Database Administration"
	SpecITSupport           Specialization = "IT Support and Help Desk"
	SpecITProjectManagement Specialization = "IT Project Management"
	SpecWebDevelopment      Specialization = "Web Development"
	SpecDevOps              Specialization = "DevOps and Site Reliability"
)

// Finance
const (
	SpecAccounting        Specialization = "Accounting"
	SpecAudit             Specialization = "Audit"
	SpecFinancialAnalysis Specialization = "Financial Analysis"
	SpecBanking           Specialization = "Banking"
	SpecPayroll           Specialization = "Payroll"
	SpecTax               Specialization = "Tax"
	SpecInsurance         Specialization = "Insurance"
)

// Engineering
const (
	SpecCivilEngineering         Specialization = "Civil Engineering"
	SpecMechanicalEngineering    Specialization = "Mechanical Engineering"
	SpecElectricalEngineering    Specialization = "Electrical Engineering"
	SpecChemicalEngineering      Specialization = "Chemical Engineering"
	SpecAerospaceEngineering     Specialization = "Aerospace Engineering"
	SpecEnvironmentalEngineering Specialization = "Environmental Engineering"
)

// Hospitality
const (
	SpecHotelOperations Specialization = "Hotel Operations"
	SpecFoodAndBeverage Specialization = "Food and Beverage"
	SpecCulinary        Specialization = "Culinary"
	SpecEventsCatering  Specialization = "Events and Catering"
	SpecHousekeeping    Specialization = "Housekeeping"
)

// Public Sector
const (
	SpecCentralGovernment   Specialization = "Central Government"
	SpecLocalGovernment     Specialization = "Local Government"
	SpecPublicPolicy        Specialization = "Public Policy"
	SpecEmergencyServices   Specialization = "Emergency Services"
	SpecEducationAdmin      Specialization = "Education Administration"
	SpecPublicHealthService Specialization = "Public Health Administration"
)

// Legal
const (
	SpecCorporateLaw  Specialization = "Corporate Law"
	SpecLitigation    Specialization = "Litigation"
	SpecFamilyLaw     Specialization = "Family Law"
	SpecPropertyLaw   Specialization = "Property Law"
	SpecEmploymentLaw Specialization = "Employment Law"
	SpecLegalSupport  Specialization = "Legal Support"
)

// Manufacturing
const (
	SpecProduction            Specialization = "Production"
	SpecQualityControl        Specialization = "Quality Control"
	SpecSupplyChain           Specialization = "Supply Chain and Logistics"
	SpecMaintenance           Specialization = "Maintenance"
	SpecContinuousImprovement Specialization = "Lean and Continuous Improvement"
)

// Research & Development
const (
	SpecScientificResearch Specialization = "Scientific Research"
	SpecProductDevelopment Specialization = "Product Development"
	SpecLaboratory         Specialization = "Laboratory"
	SpecClinicalResearch   Specialization = "Clinical Research"
)

// Sales
const (
	SpecBusinessDevelopment Specialization = "Business Development"
	SpecAccountManagement   Specialization = "Account Management"
	SpecRetailSales         Specialization = "Retail Sales"
	SpecInsideSales         Specialization = "Inside Sales"
	SpecTechnicalSales      Specialization = "Technical Sales"
	SpecFieldSales          Specialization = "Field Sales"
)

// Marketing
const (
	SpecDigitalMarketing Specialization = "Digital Marketing"
	SpecContent          Specialization = "Content and Copywriting"
	SpecBrandManagement  Specialization = "Brand Management"
	SpecSocialMedia      Specialization = "Social Media"
	SpecMarketResearch   Specialization = "Market Research"
	SpecPublicRelations  Specialization = "Public Relations"
)

// Human Resources
const (
	SpecRecruitment          Specialization = "Recruitment"
	SpecHRGeneralist         Specialization = "HR Generalist"
	SpecLearningDevelopment  Specialization = "Learning and Development"
	SpecCompensationBenefits Specialization = "Compensation and Benefits"
	SpecEmployeeRelations    Specialization = "Employee Relations"
)

// Pharmaceuticals
const (
	SpecRegulatoryAffairs   Specialization = "Regulatory Affairs"
	SpecPharmacovigilance   Specialization = "Pharmacovigilance"
	SpecMedicalAffairs      Specialization = "Medical Affairs"
	SpecPharmaManufacturing Specialization = "Pharmaceutical Manufacturing"
	SpecPharmaSales         Specialization = "Pharmaceutical Sales"
)

// Energy
const (
	SpecRenewableEnergy  Specialization = "Renewable Energy"
	SpecOilAndGas        Specialization = "Oil and Gas"
	SpecPowerGeneration  Specialization = "Power Generation and Distribution"
	SpecEnergyEfficiency Specialization = "Energy Efficiency"
	SpecNuclear          Specialization = "Nuclear"
)

// ParseWorkArea converts a raw label to a WorkArea, returning an error for
// labels that are not in the table.
func ParseWorkArea(s string) (WorkArea, error) {
	a := WorkArea(s)
	if a == AreaOther {
		return a, nil
	}
	if _, ok := idx.areas[a]; !ok {
		return "", fmt.Errorf("unknown work area %q", s)
	}
	return a, nil
}

// ParseSpecialization converts a raw label to a Specialization, returning an
// error for labels that are not in any area's table.
func ParseSpecialization(s string) (Specialization, error) {
	sp := Specialization(s)
	if _, ok := idx.specs[sp]; !ok {
		return "", fmt.Errorf("unknown specialization %q", s)
	}
	return sp, nil
}
