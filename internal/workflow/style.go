package workflow

// Style is the 2×2 description style requested by the user.
type Style struct {
	Brief  bool `json:"brief"`
	Formal bool `json:"formal"`
}

// StyleLabel is the display form of a style, used in request summaries.
// The fallback is unreachable for boolean inputs and exists only to keep
// the map lookup total.
func StyleLabel(st Style) string {
	labels := map[Style]string{
		{Brief: true, Formal: true}:   "Краткий и официальный",
		{Brief: true, Formal: false}:  "Краткий и неформальный",
		{Brief: false, Formal: true}:  "Подробный и официальный",
		{Brief: false, Formal: false}: "Подробный и неформальный",
	}
	if label, ok := labels[st]; ok {
		return label
	}
	return "Не определен"
}
