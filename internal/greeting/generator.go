package greeting

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"calendar-assistant/internal/llm"
	"calendar-assistant/internal/search"
)

// Payload is the job-file contract of the greeting service.
type Payload struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Greeting string `json:"greeting"`
}

// holiday search results are clipped per result to keep the prompt small
const holidayContentLimit = 300

type Generator struct {
	llm    llm.Client
	search search.Client
}

func NewGenerator(llmClient llm.Client, searchClient search.Client) *Generator {
	return &Generator{llm: llmClient, search: searchClient}
}

// Generate produces the final, normalized greeting for a date and time.
// Holiday lookup is best-effort; a model failure is the only hard error.
func (g *Generator) Generate(ctx context.Context, date, timeStr string) (string, error) {
	summary := g.holidaySummary(ctx, date)
	prompt := buildPrompt(timeSalutation(timeStr), timeStr, date, summary)

	resp, err := g.llm.Generate(ctx, []llm.Message{
		{Role: "system", Content: "Ты профессиональный ассистент календаря VK WorkSpace"},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("greeting generation failed: %w", err)
	}
	log.Printf("greeting response [model=%s, tokens: total=%d]", resp.Model, resp.TotalTokens)
	return ParseGreeting(resp.Content), nil
}

func (g *Generator) holidaySummary(ctx context.Context, date string) string {
	query := fmt.Sprintf("%s международные и государственные праздники в России", date)
	results, err := g.search.Search(ctx, query)
	if err != nil {
		log.Printf("holiday lookup failed: %v", err)
		return fmt.Sprintf("Не удалось получить информацию о праздниках: %v", err)
	}
	return search.Summarize(results, holidayContentLimit)
}

// timeSalutation picks the salutation by hour. A time the hour cannot be
// read from turns into an instruction for the model to pick one itself.
func timeSalutation(timeStr string) string {
	hourStr, _, _ := strings.Cut(timeStr, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		log.Printf("malformed time %q, deferring salutation to the model", timeStr)
		return "Необходимо выбрать корректную форму приветствия самостоятельно"
	}
	switch {
	case hour >= 5 && hour < 12:
		return "Доброе утро"
	case hour >= 12 && hour < 17:
		return "Добрый день"
	case hour >= 17 && hour < 22:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}

const promptTemplate = `
Ты ассистент календаря VK WorkSpace. Сгенерируй приветствие для пользователя с учетом:
1. Текущее время: %s (%s)
2. Сегодняшняя дата: %s
3. Найденная информация о праздниках:
%s

Требования:
- Приветствие должно быть кратким (1-2 предложения)
- Косвенно упомяни 1-2 наиболее интересных НЕрелигиозных/НЕполитических праздника
- Плавно интегрируй рекламу календаря VK WorkSpace
- Стиль: дружелюбный профессиональный (не слишком формальный, но и не развязный)
- Заканчивай приветствие восклицательным знаком (!)
- После размышлений в качестве финального ответа добавь тег [GREETINGS] и само приветствие

О календаре VK WorkSpace:
- Корпоративный инструмент для планирования встреч и мероприятий
- Интеграция с почтой, видеозвонками и документами
- Поддержка on-premise решений для безопасности данных
- Умные напоминания и аналитика расписания

Примеры удачных фраз:
"А вы знали, что сегодня День программиста? Запрограммируйте свои планы с помощью Календаря VK WorkSpace!"
"В такую прекрасную дату самое время запланировать встречи на следующую неделю. VK WorkSpace поможет!"
`

func buildPrompt(salutation, timeStr, date, holidaySummary string) string {
	return strings.TrimSpace(fmt.Sprintf(promptTemplate, salutation, timeStr, date, holidaySummary))
}

var (
	greetingRe   = regexp.MustCompile(`(?s)\[GREETINGS\](.+)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseGreeting extracts the text after the [GREETINGS] tag, collapses
// whitespace runs and guarantees terminal punctuation. Without the tag the
// raw completion is returned verbatim so the caller still has something to
// display.
func ParseGreeting(response string) string {
	m := greetingRe.FindStringSubmatch(response)
	if m == nil {
		log.Printf("no [GREETINGS] tag in model response, returning raw text")
		return response
	}
	result := strings.TrimSpace(m[1])
	result = whitespaceRe.ReplaceAllString(result, " ")
	if !strings.HasSuffix(result, "!") && !strings.HasSuffix(result, ".") {
		result += "!"
	}
	return result
}
