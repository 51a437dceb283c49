package quiz

// Tier категория итогового сообщения
type Tier string

const (
	TierPerfect      Tier = "perfect"
	TierExcellent    Tier = "excellent"
	TierGood         Tier = "good"
	TierNeedsReview  Tier = "needs review"
	TierNeedsRestudy Tier = "needs restudy"
)

var tierMessages = map[Tier]string{
	TierPerfect:      "完璧です！🎉 量子もつれマスター！",
	TierExcellent:    "すばらしい！🌟 よく理解できています！",
	TierGood:         "なかなか良いです！👍 もう少し復習してみましょう",
	TierNeedsReview:  "もう少し！📚 コンテンツをもう一度読んでみましょう",
	TierNeedsRestudy: "がんばって！💪 基礎から学び直してみましょう",
}

// ResultMessage сопоставляет процент правильных ответов категории. Первое совпадение сверху вниз.
func ResultMessage(percentage int) Tier {
	switch {
	case percentage == 100:
		return TierPerfect
	case percentage >= 80:
		return TierExcellent
	case percentage >= 60:
		return TierGood
	case percentage >= 40:
		return TierNeedsReview
	default:
		return TierNeedsRestudy
	}
}

// Message текст для пользователя
func (t Tier) Message() string {
	return tierMessages[t]
}
