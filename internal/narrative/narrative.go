// Package narrative turns classified metrics and derived ratios into
// Korean-language commentary via a text generation backend. Generation
// failures degrade into explanatory text so callers can always embed the
// result in a normal response.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/dart-analysis/internal/model"
	"github.com/sells-group/dart-analysis/pkg/anthropic"
)

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Generator adapts an anthropic client to TextGenerator.
type Generator struct {
	Client    anthropic.Client
	Model     string
	MaxTokens int64
}

// system prompt shared by every request; cached server-side.
const systemPrompt = "당신은 한국 상장기업의 재무제표를 분석하는 재무 분석 전문가입니다. 정중하고 전문적인 어조로, 일반인도 이해하기 쉽게 설명합니다."

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.Client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     g.Model,
		MaxTokens: g.MaxTokens,
		System:    anthropic.BuildCachedSystemBlocks(systemPrompt),
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	resp.Usage.LogCost(g.Model, "narrative")
	return resp.Text(), nil
}

// Composer builds prompts and runs them through a TextGenerator.
type Composer struct {
	gen TextGenerator
	log *zap.Logger
}

func NewComposer(gen TextGenerator) *Composer {
	return &Composer{gen: gen, log: zap.L().Named("narrative")}
}

// Analysis produces the multi-section financial commentary. On generator
// failure the returned string explains the failure; it never errors.
func (c *Composer) Analysis(ctx context.Context, companyName string, cm model.CanonicalMetrics, da model.DerivedAnalysis) string {
	prompt := analysisPrompt(companyName, cm, da)
	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.log.Warn("analysis generation failed", zap.String("company", companyName), zap.Error(err))
		return fmt.Sprintf("AI 분석 생성 중 오류가 발생했습니다: %v", err)
	}
	return text
}

// Summary produces the short 3-4 sentence financial summary, degrading the
// same way Analysis does.
func (c *Composer) Summary(ctx context.Context, companyName, year string, cm model.CanonicalMetrics) string {
	prompt := summaryPrompt(companyName, year, cm)
	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.log.Warn("summary generation failed", zap.String("company", companyName), zap.Error(err))
		return fmt.Sprintf("AI 요약 생성 중 오류가 발생했습니다: %v", err)
	}
	return text
}

// analysisPrompt embeds every present metric with its approximate scale
// and the derived ratios. Companies without a revenue caption get the
// operating-revenue framing used for banks and insurers.
func analysisPrompt(companyName string, cm model.CanonicalMetrics, da model.DerivedAnalysis) string {
	financial := !cm.Has(model.MetricRevenue)

	var b strings.Builder
	fmt.Fprintf(&b, "다음은 %s의 실제 재무 데이터입니다. 모든 수치는 전자공시 API에서 조회된 정확한 데이터입니다.\n\n", companyName)
	b.WriteString("**실제 재무 정보:**\n")
	writeMetricLine(&b, "자산총계", cm.Current(model.MetricAssets))
	writeMetricLine(&b, "부채총계", cm.Current(model.MetricLiabilities))
	writeMetricLine(&b, "자본총계", cm.Current(model.MetricEquity))
	if financial {
		writeMetricLine(&b, "영업수익", cm.Current(model.MetricOperatingProfit))
	} else {
		writeMetricLine(&b, "매출액", cm.Current(model.MetricRevenue))
		writeMetricLine(&b, "영업이익", cm.Current(model.MetricOperatingProfit))
	}
	writeMetricLine(&b, "당기순이익", cm.Current(model.MetricNetIncome))

	if financial {
		b.WriteString("\n금융업 특성상 매출액 대신 영업수익을 중심으로 분석해주세요.\n")
	}

	b.WriteString("\n**계산된 수익성 지표:**\n")
	fmt.Fprintf(&b, "- ROE (자기자본수익률): %s%%\n", formatRatio(da.Profitability.ROE))
	fmt.Fprintf(&b, "- ROA (총자산수익률): %s%%\n", formatRatio(da.Profitability.ROA))

	b.WriteString("\n**재무 안정성:**\n")
	fmt.Fprintf(&b, "- 부채비율: %s%%\n", formatRatio(da.Ratios.DebtToEquity))
	fmt.Fprintf(&b, "- 자기자본비율: %s%%\n", formatRatio(da.Ratios.EquityRatio))

	b.WriteString(`
다음 관점에서 위에 제공된 실제 재무 데이터를 바탕으로 구체적으로 분석해주시기 바랍니다:
1. 회사 개요: 제공된 재무 데이터를 바탕으로 이 회사의 재무 상태를 종합적으로 평가해주세요.
2. 수익성: ROE/ROA 수치를 고려하여 수익성을 평가해주세요.
3. 안정성: 부채비율과 자기자본비율을 바탕으로 재무 안정성을 평가해주세요.
4. 성장성: 현재 재무 수치로 보이는 성장 잠재력을 평가해주세요.
5. 투자 관점: 일반 투자자가 이 수치들을 어떻게 해석해야 하는지 조언해주세요.
6. 주의사항: 투자 시 주의해야 할 리스크 요인을 분석해주세요.

**중요한 지침:**
- "` + missingMarker + `"로 표시된 항목은 이번 보고서에서 확인되지 않은 값이므로 추정하지 말고 그대로 언급해주세요.
- 각 섹션은 2-3문장으로 간결하게 작성해주세요.
`)
	if financial {
		b.WriteString("금융업의 특성을 고려하여 분석해주세요.\n")
	}
	return b.String()
}

func summaryPrompt(companyName, year string, cm model.CanonicalMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s의 %s년 재무 상태를 3-4문장으로 정중하게 요약해주시기 바랍니다.\n\n", companyName, year)
	b.WriteString("주요 수치:\n")
	fmt.Fprintf(&b, "- 매출액: %s원\n", formatApprox(cm.Current(model.MetricRevenue)))
	fmt.Fprintf(&b, "- 영업이익: %s원\n", formatApprox(cm.Current(model.MetricOperatingProfit)))
	fmt.Fprintf(&b, "- 순이익: %s원\n", formatApprox(cm.Current(model.MetricNetIncome)))
	fmt.Fprintf(&b, "- 총자산: %s원\n", formatApprox(cm.Current(model.MetricAssets)))
	b.WriteString(`
일반인이 이해하기 쉽게, 전문적이면서도 정중한 어조로 작성해주세요.
수치의 의미와 회사의 재무 건전성에 대해 존댓말로 간단히 설명해주시기 바랍니다.
"` + missingMarker + `"으로 표시된 수치는 추정하지 말고 확인되지 않았다고 언급해주세요.
`)
	return b.String()
}

func writeMetricLine(b *strings.Builder, label string, v *int64) {
	fmt.Fprintf(b, "- %s: %s원 (약 %s)\n", label, formatWon(v), formatApprox(v))
}
