package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Coin   CoinConfig   `yaml:"coin"`
}

type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpPower float64 `yaml:"jumpPower"`
}

type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

type CoinConfig struct {
	Radius float64 `yaml:"radius"`
	Margin float64 `yaml:"margin"` // >1 makes pickups forgiving
}

// DefaultEntitiesConfig returns the values shipped in entities.yaml
func DefaultEntitiesConfig() EntitiesConfig {
	return EntitiesConfig{
		Player: PlayerConfig{Width: 16, Height: 16, Speed: 2.0, JumpPower: 3.6},
		Enemy:  EnemyConfig{Width: 16, Height: 16, Speed: 1.0},
		Coin:   CoinConfig{Radius: 8, Margin: 1.25},
	}
}
