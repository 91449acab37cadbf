package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	SearchDepth     int    `mapstructure:"SEARCH_DEPTH"`
	AssistDepth     int    `mapstructure:"ASSIST_DEPTH"`
	KingWeight      int    `mapstructure:"KING_WEIGHT"`
	CenterBonus     int    `mapstructure:"CENTER_BONUS"`
	BackRankBonus   int    `mapstructure:"BACK_RANK_BONUS"`
	AdvanceBonus    int    `mapstructure:"ADVANCE_BONUS"`
	SideBonus       int    `mapstructure:"SIDE_BONUS"`
	FlyingPromotion bool   `mapstructure:"FLYING_PROMOTION"`
	MaxQuietPlies   int    `mapstructure:"MAX_QUIET_PLIES"`
	ReportPath      string `mapstructure:"REPORT_PATH"`
	PlayerName      string `mapstructure:"PLAYER_NAME"`
	BotName         string `mapstructure:"BOT_NAME"`
	Debug           bool   `mapstructure:"DEBUG"`
}

func Default() *Config {
	return &Config{
		SearchDepth:   4,
		AssistDepth:   6,
		KingWeight:    300,
		CenterBonus:   10,
		BackRankBonus: 20,
		AdvanceBonus:  2,
		SideBonus:     5,
		MaxQuietPlies: 80,
		ReportPath:    "match_report.pdf",
		PlayerName:    "You",
		BotName:       "Gukesh",
	}
}

// Setup reads the .env-style config at cfgPath. A missing file is not an
// error: the defaults above apply so the binary runs without any config.
func Setup(cfgPath string) (*Config, error) {
	cfg := Default()

	viper.SetConfigFile(cfgPath)
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
