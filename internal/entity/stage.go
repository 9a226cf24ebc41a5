package entity

import "fmt"

// Stage é a coluna do pipeline em que um lead está.
type Stage string

const (
	StageFormFilled       Stage = "form_filled"
	StageWaitingResponse  Stage = "waiting_response"
	StageQualifyingBANT   Stage = "qualifying_bant"
	StageMeetingScheduled Stage = "meeting_scheduled"
	StageFollowUp         Stage = "follow_up"
	StageSold             Stage = "sold"
	StageDisqualified     Stage = "disqualified"
)

// Column é a definição estática de uma coluna do kanban.
type Column struct {
	Stage Stage  `json:"stage"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Ordem apenas de exibição, não existe sequência obrigatória.
var columns = []Column{
	{StageFormFilled, "Formulário Preenchido", "#64748B"},
	{StageWaitingResponse, "Aguardando Resposta", "#F59E0B"},
	{StageQualifyingBANT, "Qualificação BANT", "#3B82F6"},
	{StageMeetingScheduled, "Reunião Agendada", "#8B5CF6"},
	{StageFollowUp, "Follow-up", "#06B6D4"},
	{StageSold, "Vendido", "#10B981"},
	{StageDisqualified, "Desqualificado", "#EF4444"},
}

const DefaultStage = StageFormFilled

func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

func Stages() []Stage {
	out := make([]Stage, 0, len(columns))
	for _, c := range columns {
		out = append(out, c.Stage)
	}
	return out
}

func (s Stage) Valid() bool {
	for _, c := range columns {
		if c.Stage == s {
			return true
		}
	}
	return false
}

func (s Stage) Label() string {
	for _, c := range columns {
		if c.Stage == s {
			return c.Label
		}
	}
	return string(s)
}

func ParseStage(v string) (Stage, error) {
	s := Stage(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStage, v)
	}
	return s, nil
}

// ValidateTransition aceita qualquer origem para qualquer destino válido.
// Voltar ou pular colunas é permitido.
func ValidateTransition(from, to Stage) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStage, to)
	}
	return nil
}
