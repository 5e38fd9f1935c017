package careers

// DefaultCatalog returns the built-in career catalog in canonical order.
// The memory repo serves it directly; the Postgres seed mirrors it.
func DefaultCatalog() []Career {
	return []Career{
		{
			ID:          "software_engineer",
			Name:        "Software Engineer",
			Description: "Designs, builds, and maintains software systems.",
			Category:    "technology",
			Requirements: Requirements{
				Skills:           []string{"problem_solving", "mathematics"},
				Traits:           []string{"analytical", "detail_oriented"},
				WorkEnvironment:  "remote",
				Collaboration:    "team",
				Structure:        "flexible",
				LearningStyle:    "hands_on",
				Values:           []string{"growth", "autonomy"},
				MinRiskTolerance: 4,
			},
		},
		{
			ID:          "data_analyst",
			Name:        "Data Analyst",
			Description: "Turns raw data into insight that drives decisions.",
			Category:    "technology",
			Requirements: Requirements{
				Skills:          []string{"mathematics", "problem_solving"},
				Traits:          []string{"analytical", "detail_oriented"},
				WorkEnvironment: "office",
				Collaboration:   "mixed",
				Structure:       "structured",
				LearningStyle:   "reading",
				Values:          []string{"stability", "growth"},
			},
		},
		{
			ID:          "ux_designer",
			Name:        "UX Designer",
			Description: "Shapes how people experience digital products.",
			Category:    "design",
			Requirements: Requirements{
				Skills:          []string{"design", "empathy"},
				Traits:          []string{"creative", "big_picture"},
				WorkEnvironment: "mixed",
				Collaboration:   "team",
				Structure:       "flexible",
				LearningStyle:   "visual",
				Values:          []string{"creativity", "impact"},
			},
		},
		{
			ID:          "product_manager",
			Name:        "Product Manager",
			Description: "Owns product strategy from discovery to delivery.",
			Category:    "business",
			Requirements: Requirements{
				Skills:           []string{"communication", "leadership"},
				Traits:           []string{"big_picture", "pragmatic"},
				WorkEnvironment:  "office",
				Collaboration:    "team",
				Structure:        "flexible",
				LearningStyle:    "discussion",
				Values:           []string{"impact", "recognition"},
				MinRiskTolerance: 6,
			},
		},
		{
			ID:          "registered_nurse",
			Name:        "Registered Nurse",
			Description: "Provides hands-on patient care in clinical settings.",
			Category:    "healthcare",
			Requirements: Requirements{
				Skills:          []string{"empathy", "organization"},
				Traits:          []string{"detail_oriented", "pragmatic"},
				WorkEnvironment: "field",
				Collaboration:   "team",
				Structure:       "structured",
				LearningStyle:   "hands_on",
				Values:          []string{"service", "stability"},
			},
		},
		{
			ID:          "marketing_specialist",
			Name:        "Marketing Specialist",
			Description: "Builds campaigns that connect products with audiences.",
			Category:    "business",
			Requirements: Requirements{
				Skills:          []string{"writing", "communication"},
				Traits:          []string{"creative", "big_picture"},
				WorkEnvironment: "remote",
				Collaboration:   "mixed",
				Structure:       "flexible",
				LearningStyle:   "visual",
				Values:          []string{"creativity", "recognition"},
			},
		},
		{
			ID:          "financial_advisor",
			Name:        "Financial Advisor",
			Description: "Guides clients through long-term financial decisions.",
			Category:    "finance",
			Requirements: Requirements{
				Skills:           []string{"mathematics", "communication"},
				Traits:           []string{"analytical", "pragmatic"},
				WorkEnvironment:  "office",
				Collaboration:    "solo",
				Structure:        "structured",
				LearningStyle:    "reading",
				Values:           []string{"stability", "recognition"},
				MinRiskTolerance: 5,
			},
		},
		{
			ID:          "teacher",
			Name:        "Teacher",
			Description: "Educates and mentors students across subjects.",
			Category:    "education",
			Requirements: Requirements{
				Skills:          []string{"teaching", "communication", "empathy"},
				Traits:          []string{"big_picture", "creative"},
				WorkEnvironment: "office",
				Collaboration:   "team",
				Structure:       "structured",
				LearningStyle:   "discussion",
				Values:          []string{"service", "impact"},
			},
		},
		{
			ID:          "entrepreneur",
			Name:        "Entrepreneur",
			Description: "Builds new ventures from idea to operating business.",
			Category:    "business",
			Requirements: Requirements{
				Skills:           []string{"leadership", "negotiation", "problem_solving"},
				Traits:           []string{"big_picture", "intuitive"},
				WorkEnvironment:  "mixed",
				Collaboration:    "mixed",
				Structure:        "flexible",
				LearningStyle:    "hands_on",
				Values:           []string{"autonomy", "impact"},
				MinRiskTolerance: 8,
			},
		},
		{
			ID:          "research_scientist",
			Name:        "Research Scientist",
			Description: "Runs experiments that push a field's knowledge forward.",
			Category:    "science",
			Requirements: Requirements{
				Skills:          []string{"mathematics", "writing", "problem_solving"},
				Traits:          []string{"analytical", "detail_oriented"},
				WorkEnvironment: "lab",
				Collaboration:   "solo",
				Structure:       "structured",
				LearningStyle:   "reading",
				Values:          []string{"growth", "impact"},
			},
		},
	}
}
