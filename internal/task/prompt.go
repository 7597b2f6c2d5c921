package task

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
		return "Краткое и неформальное (но профессиональное) описание"
	case !st.Brief && st.Formal:
		return "Подробное и официальное описание"
	default:
		return "Подробное и неформальное (но профессиональное) описание"
	}
}

func timeInfo(d Data) string {
	if d.AllDay {
		return fmt.Sprintf("Весь день: %s", d.StartDate)
	}
	return fmt.Sprintf("Начало: %s %s\nОкончание: %s %s", d.StartDate, d.StartTime, d.EndDate, d.EndTime)
}

const systemPromptTemplate = `
Ты профессиональный ассистент для сервиса Календарь VK WorkSpace, который помогает придумать
название и описание задачи для добавления ее в календарь. Твоя задача - создать четкое,
понятное и информативное описание задачи, которое поможет участникам точно понять,
что нужно сделать и какие результаты ожидаются.

Данные о задаче:
- Временные параметры: %s
- Стиль: %s
- Дополнительная информация:
%s

Требования к генерации:
1. Название задачи:
   - Максимально точно отражает суть задачи
   - Содержит глагол действия (сделать, подготовить, проверить и т.д.)
   - Лаконичное (не длиннее 7-8 слов)
   - Позволяет сразу понять суть задачи

2. Описание задачи:
   - Начинается с краткого введения/контекста
   - Четко описывает ожидаемый результат
   - Перечисляет ключевые шаги для выполнения (если применимо)
   - Указывает ответственных и участников (если есть в additional_info)
   - Включает все необходимые ссылки и ресурсы
   - Заканчивается четкими критериями успешного выполнения
   - Соответствует выбранному стилю

ВАЖНО! Всегда выводи полный ответ в строго заданном формате:
[NAME] Название задачи
[DESCRIPTION] Текст описания
`

func buildSystemPrompt(d Data) string {
	return strings.TrimSpace(fmt.Sprintf(systemPromptTemplate,
		timeInfo(d), styleDescription(d.Style), d.AdditionalInfo))
}

func feedbackInstruction(feedback string) string {
	return fmt.Sprintf("Пользовательский фидбек: %s\nПожалуйста, учти эти замечания при обновлении названия и описания. Далее твоя задача: заново сгенерировать название и описание задачи в нужном формате с учетом всех своих предыдущих ответов и фидбека от пользователя", feedback)
}
