package model

// BotStrategy names a bot decision policy
type BotStrategy string

const (
	BotStrategyRandom BotStrategy = "random"
)

// ValidBotStrategies returns all registered bot strategy names
func ValidBotStrategies() []BotStrategy {
	return []BotStrategy{BotStrategyRandom}
}

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy BotStrategy) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	default:
		return string(strategy)
	}
}
