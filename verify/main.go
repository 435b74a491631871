package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/tbtrend/store"
)

const logPrefix = "verify"

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("data.dir", "data")

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("tbtrend")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var (
		configFile string
		region     string
		asCSV      bool
	)

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&region, "region", "", "[optional] only check the region of this name or key")
	flag.BoolVar(&asCSV, "csv", false, "print the combined table as csv")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	datasets, err := store.NewFileStoreFromConfig()
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}

	checks, err := newChecks(datasets, region, os.Stdout, asCSV)
	if err != nil {
		log.WithField("prefix", logPrefix).Fatal(err)
	}

	failed := 0
	for _, c := range checks {
		if err := c.Run(); err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("region failed")
			failed++
		}
	}

	if failed > 0 {
		log.WithField("prefix", logPrefix).Errorf("%d of %d regions failed", failed, len(checks))
		os.Exit(1)
	}
}
