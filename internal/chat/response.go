// Package chat implements the conversation core: session management,
// salvage of JSON from model replies, and live-quote enrichment.
package chat

import (
	"encoding/json"
)

// Wire-level type discriminators used by the model contract.
const (
	TypeMessage        = "mensagem"
	TypeFinancialDatum = "dado_financeiro"
)

// badPayloadText is shown when a reply cannot be rendered at all.
const badPayloadText = "Não foi possível interpretar a resposta do assistente."

// Kind tags a Response variant.
type Kind string

const (
	KindMessage        Kind = "message"
	KindFinancialDatum Kind = "financial_datum"
)

// FinancialDatum is a structured market quote item in a model reply. Field
// names follow the JSON contract with the model.
type FinancialDatum struct {
	Title       string `json:"titulo"`
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
	Value       string `json:"valor"`
	ChangePct   string `json:"variacao_dia"`
	Source      string `json:"fonte"`
	Date        string `json:"data"`
}

// Response is one item of a model reply: either conversational text or a
// financial datum. Any shape the model invents beyond the two known ones
// degrades to a message.
type Response struct {
	Kind  Kind
	Text  string
	Datum FinancialDatum
}

// messageResponse wraps plain text as a message item.
func messageResponse(text string) Response {
	return Response{Kind: KindMessage, Text: text}
}

// classify converts one parsed JSON value into a Response.
func classify(value any) Response {
	obj, ok := value.(map[string]any)
	if !ok {
		return messageResponse(coerceText(value))
	}

	if tipo, _ := obj["tipo"].(string); tipo == TypeFinancialDatum {
		return Response{Kind: KindFinancialDatum, Datum: datumFromObject(obj)}
	}

	if text, ok := obj["resposta"].(string); ok {
		return messageResponse(text)
	}
	if text, ok := obj["mensagem"].(string); ok {
		return messageResponse(text)
	}
	return messageResponse(coerceText(obj))
}

func datumFromObject(obj map[string]any) FinancialDatum {
	str := func(key string) string {
		s, _ := obj[key].(string)
		return s
	}
	return FinancialDatum{
		Title:       str("titulo"),
		Code:        str("codigo"),
		Description: str("descricao"),
		Value:       str("valor"),
		ChangePct:   str("variacao_dia"),
		Source:      str("fonte"),
		Date:        str("data"),
	}
}

// coerceText renders a non-string payload as pretty-printed JSON so the
// user still sees something readable.
func coerceText(value any) string {
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return badPayloadText
	}
	return string(pretty)
}
