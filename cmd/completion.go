package cmd

import (
	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/config"
	"github.com/etnz/bankroll/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// topics predicts the documentation topics.
func topics() complete.Predictor {
	names, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(names)
}

// Completion returns the shell completion tree of the bets command.
//
// The main package calls Complete on it before parsing flags; it is a no-op
// unless the shell is asking for completions.
func Completion() *complete.Command {
	results := predict.Set{string(bankroll.Win), string(bankroll.Loss), string(bankroll.Void)}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":   predict.Files("*.yaml"),
			"store":    predict.Set{config.BackendFile, config.BackendSQLite, config.BackendRedis, config.BackendMemory},
			"path":     predict.Files("*"),
			"currency": predict.Something,
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add": {
				Flags: map[string]complete.Predictor{
					"d": predict.Something,
					"o": predict.Something,
					"s": predict.Something,
					"r": results,
				},
			},
			"remove": {Args: predict.Something},
			"clear": {
				Flags: map[string]complete.Predictor{"y": predict.Nothing},
			},
			"bankroll": {Args: predict.Something},
			"summary":  {},
			"history": {
				Flags: map[string]complete.Predictor{
					"from": predict.Something,
					"to":   predict.Something,
					"r":    results,
					"head": predict.Something,
					"tail": predict.Something,
				},
			},
			"export": {
				Flags: map[string]complete.Predictor{
					"f": predict.Set(exportFormats),
					"o": predict.Files("*"),
				},
			},
			"import": {
				Flags: map[string]complete.Predictor{"p": predict.Something},
				Args:  predict.Files("*.json"),
			},
			"fmt":   {},
			"topic": {Args: topics()},
		},
	}
}
