package profile

var educationLevelOptions = []Option{
	{"gcse", "GCSEs"},
	{"a_level", "A Levels"},
	{"btec", "BTEC / Vocational"},
	{"apprenticeship", "Apprenticeship"},
	{"undergraduate", "Undergraduate degree"},
	{"postgraduate", "Postgraduate degree"},
	{"other", "Other"},
}

var workPreferenceOptions = []Option{
	{"full_time", "Full time"},
	{"part_time", "Part time"},
	{"remote", "Remote"},
	{"hybrid", "Hybrid"},
	{"on_site", "On site"},
	{"flexible_hours", "Flexible hours"},
	{"apprenticeship", "Apprenticeship"},
	{"graduate_scheme", "Graduate scheme"},
}

var strengthOptions = []Option{
	{"communication", "Communication"},
	{"teamwork", "Teamwork"},
	{"problem_solving", "Problem solving"},
	{"creativity", "Creativity"},
	{"leadership", "Leadership"},
	{"organisation", "Organisation"},
	{"adaptability", "Adaptability"},
	{"attention_to_detail", "Attention to detail"},
	{"time_management", "Time management"},
	{"customer_focus", "Customer focus"},
	{"digital_skills", "Digital skills"},
	{"numeracy", "Numeracy"},
}

var professionalSkillOptions = []Option{
	{"project_management", "Project management"},
	{"stakeholder_management", "Stakeholder management"},
	{"data_analysis", "Data analysis"},
	{"budgeting", "Budgeting"},
	{"people_management", "People management"},
	{"negotiation", "Negotiation"},
	{"public_speaking", "Public speaking"},
	{"coaching", "Coaching"},
	{"process_improvement", "Process improvement"},
	{"strategic_planning", "Strategic planning"},
	{"technical_writing", "Technical writing"},
	{"product_thinking", "Product thinking"},
}

var leadershipStyleOptions = []Option{
	{"coaching", "Coaching"},
	{"delegative", "Delegative"},
	{"democratic", "Democratic"},
	{"servant", "Servant"},
	{"transformational", "Transformational"},
	{"visionary", "Visionary"},
}

var workValueOptions = []Option{
	{"work_life_balance", "Work-life balance"},
	{"progression", "Progression"},
	{"purpose", "Purpose"},
	{"stability", "Stability"},
	{"learning", "Learning"},
	{"autonomy", "Autonomy"},
	{"recognition", "Recognition"},
	{"compensation", "Compensation"},
}

var noticePeriodOptions = []Option{
	{"immediate", "Immediately"},
	{"one_week", "One week"},
	{"one_month", "One month"},
	{"three_months", "Three months or more"},
}

var timeInRoleOptions = []Option{
	{"under_one_year", "Less than a year"},
	{"one_to_two_years", "1-2 years"},
	{"three_to_five_years", "3-5 years"},
	{"over_five_years", "More than 5 years"},
}

var availabilityOptions = []Option{
	{"full_time", "Full time"},
	{"part_time", "Part time"},
	{"consulting", "Consulting"},
	{"volunteering", "Volunteering"},
	{"mentoring_only", "Mentoring only"},
}

var encoreContributionOptions = []Option{
	{"mentoring", "Mentoring"},
	{"consulting", "Consulting"},
	{"interim_management", "Interim management"},
	{"board_advisory", "Board / advisory"},
	{"training", "Training others"},
	{"project_work", "Project work"},
}

var pivotReadinessOptions = []Option{
	{"exploring", "Exploring options"},
	{"retraining", "Retraining now"},
	{"ready_now", "Ready to move now"},
}

var pivotReasonOptions = []Option{
	{"new_challenge", "A new challenge"},
	{"better_balance", "Better balance"},
	{"redundancy", "Redundancy"},
	{"passion", "Following a passion"},
	{"relocation", "Relocation"},
	{"health", "Health"},
	{"progression", "Progression"},
}
