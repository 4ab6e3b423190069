package usecase

import (
	"context"
	"errors"
	"fmt"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/metrics"
	"mixto_gestao/internal/usecase/interfaces"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const AssistantFallbackAnswer = "Não foi possível conectar ao assistente. Verifique a configuração da chave de API e tente novamente."

var (
	ErrInvalidQuestion = errors.New("question is required")
	ErrAssistantBusy   = errors.New("assistant is already answering a question")
)

// AssistantAnswer is either the model text or the fallback message.
type AssistantAnswer struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback"`
}

type IAssistantUseCase interface {
	Ask(ctx context.Context, question string) (AssistantAnswer, error)
}

// AssistantUseCase answers free-text questions about the dashboard numbers.
// Only one question is answered at a time.
type AssistantUseCase struct {
	stats    IStatsUseCase
	provider interfaces.IChatProvider
	company  string
	inFlight atomic.Bool
	log      *zap.Logger
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(stats IStatsUseCase, provider interfaces.IChatProvider, companyName string, log *zap.Logger) *AssistantUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssistantUseCase{stats: stats, provider: provider, company: companyName, log: log.Named("assistant.usecase")}
}

// Ask never fails because of the provider: any provider error is logged and
// answered with AssistantFallbackAnswer.
func (u *AssistantUseCase) Ask(ctx context.Context, question string) (AssistantAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return AssistantAnswer{}, ErrInvalidQuestion
	}
	if !u.inFlight.CompareAndSwap(false, true) {
		return AssistantAnswer{}, ErrAssistantBusy
	}
	defer u.inFlight.Store(false)

	prompt := systemPrompt(u.company, u.stats.Dashboard(ctx))

	start := time.Now()
	answer, err := u.provider.Ask(ctx, prompt, question)
	if err != nil {
		metrics.RecordAssistantCall("error", time.Since(start))
		u.log.Warn("assistant call failed", zap.Error(err))
		return AssistantAnswer{Answer: AssistantFallbackAnswer, Fallback: true}, nil
	}
	metrics.RecordAssistantCall("success", time.Since(start))
	return AssistantAnswer{Answer: answer}, nil
}

func systemPrompt(company string, s entities.DashboardStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Você é o assistente de gestão da empresa %s, que presta serviços de construção e reforma.\n", company)
	sb.WriteString("Responda em português do Brasil, de forma curta e objetiva, usando apenas os dados abaixo.\n\n")
	fmt.Fprintf(&sb, "Clientes cadastrados: %d\n", s.TotalClients)
	fmt.Fprintf(&sb, "Orçamentos emitidos: %d\n", s.TotalBudgets)
	fmt.Fprintf(&sb, "Faturamento total: R$ %.2f\n", s.TotalRevenue)
	fmt.Fprintf(&sb, "Serviços ativos: %d\n", s.ActiveServices)
	sb.WriteString("Faturamento por mês:")
	for _, m := range s.MonthlyRevenue {
		fmt.Fprintf(&sb, " %s R$ %.2f;", m.Label, m.Value)
	}
	return sb.String()
}
