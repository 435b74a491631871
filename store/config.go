package store

import (
	"github.com/spf13/viper"

	"github.com/bitmark-inc/tbtrend/consts"
	"github.com/bitmark-inc/tbtrend/schema"
)

// NewFileStoreFromConfig builds a store from the data.* configuration. The
// WHO region table is used when data.regions is not set.
func NewFileStoreFromConfig() (DatasetStore, error) {
	var regions []schema.Region
	if viper.IsSet("data.regions") {
		if err := viper.UnmarshalKey("data.regions", &regions); err != nil {
			return nil, err
		}
	} else {
		regions = append(regions, consts.WHORegions...)
	}

	return NewFileStore(viper.GetString("data.dir"), regions, viper.GetString("data.default_region"))
}
