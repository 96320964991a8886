package wizard

// CoreQuestions returns the fixed, country-agnostic baseline question set.
// Priorities space the intake so specialist-injected questions (priority
// 800-900 band) can land between profile questions and the long tail.
func CoreQuestions() []Question {
	return []Question{
		{
			ID:   "core.language",
			Type: TypeEnum,
			Text: Text{
				LangEN: "Which language do you prefer for this conversation?",
				LangPT: "Qual idioma você prefere para esta conversa?",
			},
			Options: []Option{
				{Value: LangEN, Label: Text{LangEN: "English", LangPT: "Inglês"}},
				{Value: LangPT, Label: Text{LangEN: "Portuguese", LangPT: "Português"}},
			},
			Validation: &Validation{Required: true},
			SaveTo:     SaveTo{Answers: PathLanguage},
			Tags:       []string{"profile"},
			Priority:   1000,
			CreatedBy:  CreatedByCore,
		},
		{
			ID:   "core.lifecycle_mode",
			Type: TypeEnum,
			Text: Text{
				LangEN: "Are you starting a new business or structuring an existing one?",
				LangPT: "Você está começando um negócio novo ou estruturando um já existente?",
			},
			Options: []Option{
				{Value: LifecycleNew, Label: Text{LangEN: "New business", LangPT: "Negócio novo"}},
				{Value: LifecycleExisting, Label: Text{LangEN: "Existing business", LangPT: "Negócio existente"}},
			},
			Validation: &Validation{Required: true},
			SaveTo:     SaveTo{Answers: PathLifecycle, Company: companyLifecycle},
			Tags:       []string{"profile"},
			Priority:   950,
			CreatedBy:  CreatedByCore,
		},
		{
			ID:   "core.country_mode",
			Type: TypeEnum,
			Text: Text{
				LangEN: "Where will the business operate?",
				LangPT: "Onde o negócio vai operar?",
			},
			Options: []Option{
				{Value: CountryBR, Label: Text{LangEN: "Brazil", LangPT: "Brasil"}},
				{Value: CountryUS, Label: Text{LangEN: "United States", LangPT: "Estados Unidos"}},
				{Value: CountryEU, Label: Text{LangEN: "European Union", LangPT: "União Europeia"}},
			},
			Validation: &Validation{Required: true},
			SaveTo:     SaveTo{Answers: PathCountry, Company: companyCountry},
			Tags:       []string{"profile"},
			Priority:   900,
			CreatedBy:  CreatedByCore,
		},
		{
			ID:   "core.industry",
			Type: TypeEnum,
			Text: Text{
				LangEN: "Which industry best describes the business?",
				LangPT: "Qual setor melhor descreve o negócio?",
			},
			Options: []Option{
				{Value: "RETAIL", Label: Text{LangEN: "Retail and commerce", LangPT: "Varejo e comércio"}},
				{Value: "SERVICES", Label: Text{LangEN: "Professional services", LangPT: "Serviços profissionais"}},
				{Value: "HEALTH", Label: Text{LangEN: "Health", LangPT: "Saúde"}},
				{Value: "FOOD", Label: Text{LangEN: "Food and beverage", LangPT: "Alimentação e bebidas"}},
				{Value: "TECH", Label: Text{LangEN: "Technology", LangPT: "Tecnologia"}},
			},
			SaveTo:    SaveTo{Answers: PathIndustry, Company: companyIndustry},
			Tags:      []string{"profile"},
			Priority:  850,
			CreatedBy: CreatedByCore,
		},
		{
			ID:   "core.packs",
			Type: TypeMultiSelect,
			Text: Text{
				LangEN: "Which focus packs apply? (comma-separated)",
				LangPT: "Quais pacotes de foco se aplicam? (separados por vírgula)",
			},
			Options: []Option{
				{Value: "GENERAL", Label: Text{LangEN: "General", LangPT: "Geral"}},
				{Value: "HEALTH_IMPORT", Label: Text{LangEN: "Health import", LangPT: "Importação de saúde"}},
				{Value: "FOOD_SERVICE", Label: Text{LangEN: "Food service", LangPT: "Serviço de alimentação"}},
				{Value: "DIGITAL_SERVICES", Label: Text{LangEN: "Digital services", LangPT: "Serviços digitais"}},
			},
			SaveTo:    SaveTo{Answers: PathPacks, Company: companyPacks},
			Tags:      []string{"profile"},
			Priority:  800,
			CreatedBy: CreatedByCore,
		},
		{
			ID:   "core.team_size",
			Type: TypeText,
			Text: Text{
				LangEN: "How many people work in the business today, including founders?",
				LangPT: "Quantas pessoas trabalham no negócio hoje, incluindo os fundadores?",
			},
			Placeholder: Text{
				LangEN: "e.g. 3",
				LangPT: "ex.: 3",
			},
			SaveTo:    SaveTo{Answers: "team.size"},
			Tags:      []string{"team"},
			Priority:  700,
			CreatedBy: CreatedByCore,
		},
		{
			ID:   "core.revenue_stage",
			Type: TypeEnum,
			Text: Text{
				LangEN: "What best describes the revenue stage?",
				LangPT: "O que melhor descreve o estágio de receita?",
			},
			Options: []Option{
				{Value: "PRE_REVENUE", Label: Text{LangEN: "Pre-revenue", LangPT: "Pré-receita"}},
				{Value: "EARLY", Label: Text{LangEN: "First sales", LangPT: "Primeiras vendas"}},
				{Value: "GROWING", Label: Text{LangEN: "Growing revenue", LangPT: "Receita em crescimento"}},
				{Value: "STABLE", Label: Text{LangEN: "Stable revenue", LangPT: "Receita estável"}},
			},
			SaveTo:    SaveTo{Answers: "finance.revenue_stage"},
			Tags:      []string{"finance"},
			Priority:  650,
			CreatedBy: CreatedByCore,
		},
		{
			ID:   "core.main_goal",
			Type: TypeText,
			Text: Text{
				LangEN: "In one or two sentences, what is the main goal for the next 12 months?",
				LangPT: "Em uma ou duas frases, qual é o objetivo principal para os próximos 12 meses?",
			},
			Validation: &Validation{Required: true, MinLength: 5},
			SaveTo:     SaveTo{Answers: "goals.main"},
			Tags:       []string{"goals"},
			Priority:   600,
			CreatedBy:  CreatedByCore,
		},
	}
}

// DeepQuestions returns the advanced intake set used by the DEEP_INTAKE
// stage. The deep refresh runs over core plus these, so anything skipped in
// core intake resurfaces before the deep questions.
func DeepQuestions() []Question {
	return []Question{
		{
			ID:   "deep.capital_structure",
			Type: TypeEnum,
			Text: Text{
				LangEN: "How is the business funded today?",
				LangPT: "Como o negócio é financiado hoje?",
			},
			Options: []Option{
				{Value: "BOOTSTRAPPED", Label: Text{LangEN: "Own capital", LangPT: "Capital próprio"}},
				{Value: "LOANS", Label: Text{LangEN: "Bank loans", LangPT: "Empréstimos bancários"}},
				{Value: "INVESTORS", Label: Text{LangEN: "External investors", LangPT: "Investidores externos"}},
				{Value: "MIXED", Label: Text{LangEN: "A mix", LangPT: "Uma combinação"}},
			},
			SaveTo:    SaveTo{Answers: "finance.capital_structure"},
			Tags:      []string{"finance", "deep"},
			Priority:  500,
			CreatedBy: CreatedByDeep,
		},
		{
			ID:   "deep.pricing_model",
			Type: TypeEnum,
			Text: Text{
				LangEN: "Which pricing model fits the main offer?",
				LangPT: "Qual modelo de precificação se aplica à oferta principal?",
			},
			Options: []Option{
				{Value: "ONE_OFF", Label: Text{LangEN: "One-off sales", LangPT: "Vendas avulsas"}},
				{Value: "SUBSCRIPTION", Label: Text{LangEN: "Subscription", LangPT: "Assinatura"}},
				{Value: "USAGE", Label: Text{LangEN: "Usage-based", LangPT: "Por uso"}},
				{Value: "PROJECT", Label: Text{LangEN: "Per project", LangPT: "Por projeto"}},
			},
			SaveTo:    SaveTo{Answers: "finance.pricing_model"},
			Tags:      []string{"finance", "deep"},
			Priority:  480,
			CreatedBy: CreatedByDeep,
		},
		{
			ID:   "deep.hiring_plan",
			Type: TypeText,
			Text: Text{
				LangEN: "Do you plan to hire in the next 6 months? If so, which roles?",
				LangPT: "Você pretende contratar nos próximos 6 meses? Se sim, quais funções?",
			},
			Placeholder: Text{
				LangEN: "e.g. 2 sales, 1 operations",
				LangPT: "ex.: 2 vendas, 1 operações",
			},
			SaveTo:    SaveTo{Answers: "team.hiring_plan"},
			Tags:      []string{"team", "deep"},
			Priority:  460,
			CreatedBy: CreatedByDeep,
		},
		{
			ID:   "deep.regulatory_exposure",
			Type: TypeMultiSelect,
			Text: Text{
				LangEN: "Which regulated activities does the business touch? (comma-separated)",
				LangPT: "Quais atividades reguladas o negócio envolve? (separadas por vírgula)",
			},
			Options: []Option{
				{Value: "NONE", Label: Text{LangEN: "None", LangPT: "Nenhuma"}},
				{Value: "HEALTH_PRODUCTS", Label: Text{LangEN: "Health products", LangPT: "Produtos de saúde"}},
				{Value: "FOOD_HANDLING", Label: Text{LangEN: "Food handling", LangPT: "Manipulação de alimentos"}},
				{Value: "FINANCIAL_SERVICES", Label: Text{LangEN: "Financial services", LangPT: "Serviços financeiros"}},
				{Value: "IMPORT_EXPORT", Label: Text{LangEN: "Import/export", LangPT: "Importação/exportação"}},
			},
			SaveTo:    SaveTo{Answers: "compliance.regulated_activities"},
			Tags:      []string{"compliance", "deep"},
			Priority:  440,
			CreatedBy: CreatedByDeep,
		},
	}
}
