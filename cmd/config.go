package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/lograft/pkg/lograft"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "lograft"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	excludeFlagName           = "exclude"
	runParallelFlagName       = "parallel"
	verboseFlagName           = "verbose"
	reportFlagName            = "report"
	showPathFlagName          = "show-path"
	showFileExtensionFlagName = "show-file-extension"
	showLineFlagName          = "show-line"
	logLevelFlagName          = "log-level"

	runParallelConfigKey       = "run.parallel"
	excludeConfigKey           = "paths.exclude"
	reportConfigKey            = "report"
	showPathConfigKey          = "showPath"
	showFileExtensionConfigKey = "showFileExtension"
	showLineConfigKey          = "showLine"
	logLevelConfigKey          = "logLevel"

	defaultRunParallel = 1

	envPrefix = "LOGRAFT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".lograft.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(excludeConfigKey, []string{})

	// The rewrite options have no defaults here: an unset key means the pass
	// default, so IsSet must stay false until a flag, env var or file sets it.

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

// optionsFromConfig builds the pass options from every configured key.
// Keys that are not set keep the pass defaults.
func optionsFromConfig() (lograft.Options, error) {
	var opts lograft.Options

	if value := viper.GetString(showPathConfigKey); value != "" {
		opts = opts.WithShowPath(lograft.ShowMode(value))
	}

	if value := viper.GetString(showFileExtensionConfigKey); value != "" {
		opts = opts.WithShowFileExtension(lograft.ShowMode(value))
	}

	if viper.IsSet(showLineConfigKey) {
		opts = opts.WithShowLine(viper.GetBool(showLineConfigKey))
	}

	if value := strings.TrimSpace(viper.GetString(logLevelConfigKey)); value != "" {
		level, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return lograft.Options{}, fmt.Errorf("%w: %q", lograft.ErrInvalidLogLevel, value)
		}

		opts = opts.WithLogLevel(level)
	}

	return opts, nil
}
