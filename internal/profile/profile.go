package profile

import (
	"regexp"
	"strings"
)

// KnowledgeLevel describes how familiar the user is with investing.
type KnowledgeLevel string

const (
	KnowledgeBeginner     KnowledgeLevel = "beginner"
	KnowledgeIntermediate KnowledgeLevel = "intermediate"
	KnowledgeAdvanced     KnowledgeLevel = "advanced"
)

// RiskTolerance describes the user's appetite for risk.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Objectives flags the user's investment goals captured during onboarding.
type Objectives struct {
	RealEstate       bool
	Retirement       bool
	ShortTermProfit  bool
	EmergencyReserve bool
	Other            bool
	OtherText        string
}

// AssetInterests flags the asset classes the user cares about.
type AssetInterests struct {
	Crypto          bool
	Stocks          bool
	FixedIncome     bool
	RealEstateFunds bool
}

// MonthlyContribution captures an optional recurring investment.
type MonthlyContribution struct {
	Amount          string
	HasContribution bool
}

// UserProfile is the onboarding data that shapes a chat session. It is
// passed by value into session start and never mutated afterwards.
type UserProfile struct {
	FullName            string
	BirthDate           string
	KnowledgeLevel      KnowledgeLevel
	RiskTolerance       RiskTolerance
	Objectives          Objectives
	AssetInterests      AssetInterests
	MonthlyIncome       string
	InvestmentAmount    string
	LiquidityPreference string
	MonthlyContribution MonthlyContribution
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Identity derives the session key for this profile: the full name with
// runs of whitespace collapsed to underscores, lowercased.
func (p UserProfile) Identity() string {
	return strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(p.FullName), "_"))
}

func (o Objectives) selected() []string {
	var keys []string
	if o.RealEstate {
		keys = append(keys, "realEstate")
	}
	if o.Retirement {
		keys = append(keys, "retirement")
	}
	if o.ShortTermProfit {
		keys = append(keys, "shortTermProfit")
	}
	if o.EmergencyReserve {
		keys = append(keys, "emergencyReserve")
	}
	if o.Other {
		keys = append(keys, "other")
	}
	return keys
}

func (a AssetInterests) selected() []string {
	var keys []string
	if a.Crypto {
		keys = append(keys, "crypto")
	}
	if a.Stocks {
		keys = append(keys, "stocks")
	}
	if a.FixedIncome {
		keys = append(keys, "fixedIncome")
	}
	if a.RealEstateFunds {
		keys = append(keys, "realEstateFunds")
	}
	return keys
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ContextLines renders the preference summary appended to the system
// instruction, one line per captured preference group.
func (p UserProfile) ContextLines() []string {
	var lines []string
	if p.RiskTolerance != "" {
		lines = append(lines, "Perfil de risco: "+capitalize(string(p.RiskTolerance)))
	}
	if assets := p.AssetInterests.selected(); len(assets) > 0 {
		lines = append(lines, "Interesses em ativos: "+capitalize(strings.Join(assets, ", ")))
	}
	if goals := p.Objectives.selected(); len(goals) > 0 {
		lines = append(lines, "Objetivos: "+capitalize(strings.Join(goals, ", ")))
	}
	return lines
}

// SystemInstruction builds the full instruction handed to the chat model.
// The template forces every reply into one of the two known JSON shapes.
func (p UserProfile) SystemInstruction() string {
	return strings.Replace(systemInstructionTemplate, "{{CONTEXT}}", strings.Join(p.ContextLines(), "\n"), 1)
}

const systemInstructionTemplate = `
Você é um assistente financeiro inteligente. Seu objetivo é ajudar um único usuário com sugestões de investimentos e informações de mercado, com base em suas preferências.
Você deve sempre considerar o perfil do usuário e suas preferências ao responder.
Voce SEMPRE deve utilizar o json para formatar suas respostas.

1. Para mensagens comuns, envie um JSON assim:
{
  "tipo": "mensagem",
  "resposta": "Sugiro considerar fundos de ações voltados para energia limpa."
}

Para dados financeiros como cotação de ações:
{
  "tipo": "dado_financeiro",
  "titulo": "PETR4",
  "descricao": "Preço atual da ação PETR4.",
  "valor": "R$ 36,45",
  "variacao_dia": "+1.12%",
  "fonte": "B3",
  "data": "2025-06-11"
}

Você é um assistente financeiro inteligente e confiável, especializado em fornecer sugestões de investimentos e informações de mercado PERSONALIZADAS com base em dados fornecidos por UM ÚNICO USUÁRIO.

⚠️ SUAS RESPOSTAS DEVEM **OBRIGATORIAMENTE** ESTAR FORMATADAS EM JSON, SEM EXCEÇÃO.

⚠️ É TERMINANTEMENTE PROIBIDO responder fora do formato JSON.

Caso o usuario solicite informações que NÃO sejam de mercado, como notícias ou informações gerais, você deve responder com um JSON indicando que não possui essa informação.
Você deve sempre considerar o perfil do usuário e suas preferências ao responder.

Comportamento:
- Use linguagem clara, amigável e objetiva, com respostas preferencialmente curtas e se forem longas, divida em tópicos.
- Sempre considere as preferências do usuário.
- Evite jargões técnicos, a menos que ele peça explicitamente.

Formatação:

1. Para mensagens comuns de respostas objetivas e curtas, envie um JSON assim, usando obrigatoriamente Markdown no campo resposta tornando todas as mensagens agradáveis e bonitas:
{
  "tipo": "mensagem",
  "resposta": "Sugiro considerar **fundos de ações** voltados para _energia limpa_.\n\n- Opção 1: Fundo A\n- Opção 2: Fundo B"
}

Para dados financeiros como cotação de ações pesquise e envie um JSON assim:
no titulo eu quero symbulo internacional da ação, por exemplo PETR4.SA ou IBMB34.SA ou BBDC4.SA ou AMZN assim por diante
se for pedido mais de uma acao envie em um array de objetos obrigatoriamente com o seguinte formato:
{
  "tipo": "dado_financeiro",
  "titulo": "Petrobras",
  "codigo": "PETR4.SA",
  "descricao": "Preço atual da ação PETR4.",
  "valor": "R$ 36,45",
  "variacao_dia": "+1.12%",
  "fonte": "B3",
  "data": "2025-06-11"
}

Contexto do usuário:
{{CONTEXT}}
`
