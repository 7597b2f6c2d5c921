package event

import (
	"fmt"
	"strings"

	"calendar-assistant/internal/workflow"
)

func styleDescription(st workflow.Style) string {
	switch {
	case st.Brief && st.Formal:
		return "Краткое и официальное описание"
	case st.Brief && !st.Formal:
		return "Краткое и неформальное (но вежливое) описание"
	case !st.Brief && st.Formal:
		return "Подробное и официальное описание"
	default:
		return "Подробное и неформальное (но вежливое) описание"
	}
}

const systemPromptTemplate = `
Ты профессиональный ассистент для сервиса Календарь VK WorkSpace, который помогает придумать название и описание события для добавления его в календарь.
Твоя задача - создать привлекательное и понятное другим людям название, информативное и понятное другим людям описание для события.

Данные о событии:
- Дата: %s
- Время: %s
- Тип: %s
- Дополнительная информация:
%s
- Стиль: %s

Требования к генерации:
1. Название:
   - Максимально отражает суть события
   - Привлекательное и запоминающееся
   - Соответствует выбранному стилю
   - Не длиннее 10 слов

2. Описание:
   - Начинается с краткого введения
   - Содержит ключевые детали: цель, задачи, ожидаемые результаты
   - Включает всю дополнительную информацию
   - Соответствует выбранному стилю и формату
   - Заканчивается полезной информацией из 'Дополнительной информации', если ранее в описании она не использовалась (например, ссылки на онлайн-встречу или названия рабочих документов)

ВАЖНО! Всегда выводи полный ответ в строго заданном формате:
[NAME] Название события
[DESCRIPTION] Текст описания
`

// buildSystemPrompt renders the system prompt. The weather paragraph is
// appended only for in-person events that have a forecast.
func buildSystemPrompt(d Data, weather string) string {
	eventType := "очное мероприятие"
	if d.Address == AddressOnline {
		eventType = "онлайн-мероприятие"
	}
	prompt := fmt.Sprintf(systemPromptTemplate,
		d.Date, d.Time, eventType, d.AdditionalInfo, styleDescription(d.Style))
	if weather != "" && d.Address != AddressOnline {
		prompt += fmt.Sprintf("\nПрогноз погоды на это время, полученный из интернета при помощи Tavily:\n%s\n", weather)
		prompt += "Учти прогноз погоды при составлении описания. Погодная информация должна быть краткой и соответствовать времени и месту."
	}
	return strings.TrimSpace(prompt)
}

func feedbackInstruction(feedback string) string {
	return fmt.Sprintf("Пользовательский фидбек: %s\nПожалуйста, учти эти замечания при обновлении названия и описания. Далее твоя задача: заново сгенерировать название и описание события в нужном формате с учетом всех своих предыдущих ответов и фидбека от пользователя", feedback)
}
