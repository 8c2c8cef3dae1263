package impl

import (
	"github.com/kurtosis-tech/kurtosis-module-api-lib/golang/lib/kurtosis_modules"
	"github.com/kurtosis-tech/stacktrace"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel = "info"
)

// Parameters that the module accepts when loaded, serialized as YAML
type LoadModuleParams struct {
	// Indicates the log level for this Kurtosis module implementation
	LogLevel string `yaml:"logLevel"`
}

type SovaEthModuleConfigurator struct{}

func NewSovaEthModuleConfigurator() *SovaEthModuleConfigurator {
	return &SovaEthModuleConfigurator{}
}

func (configurator SovaEthModuleConfigurator) ParseParamsAndCreateExecutableModule(serializedCustomParamsStr string) (kurtosis_modules.ExecutableKurtosisModule, error) {
	serializedCustomParamsBytes := []byte(serializedCustomParamsStr)
	var args LoadModuleParams
	if err := yaml.Unmarshal(serializedCustomParamsBytes, &args); err != nil {
		return nil, stacktrace.Propagate(err, "An error occurred deserializing the Kurtosis module serialized custom params with value '%v'", serializedCustomParamsStr)
	}

	if err := setLogLevel(args.LogLevel); err != nil {
		return nil, stacktrace.Propagate(err, "An error occurred setting the log level")
	}

	module := NewSovaEthModule()

	return module, nil
}

func setLogLevel(logLevelStr string) error {
	if logLevelStr == "" {
		logLevelStr = defaultLogLevel
	}
	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		return stacktrace.Propagate(err, "An error occurred parsing loglevel string '%v'", logLevelStr)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	return nil
}
