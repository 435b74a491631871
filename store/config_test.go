package store

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tbtrend/consts"
)

func TestNewFileStoreFromConfig(t *testing.T) {
	defer viper.Reset()

	viper.Set("data.dir", "fixtures")
	viper.Set("data.default_region", "global")
	viper.Set("data.regions", []map[string]interface{}{
		{"name": "Global", "incidence": "global_incidence.csv", "rr": "global_rr.csv"},
	})

	s, err := NewFileStoreFromConfig()
	require.NoError(t, err)

	regions := s.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, "global", regions[0].Key)
	assert.Equal(t, "global_rr.csv", regions[0].Resistance)
	assert.NoError(t, s.Verify())
}

func TestNewFileStoreFromConfigDefaults(t *testing.T) {
	defer viper.Reset()

	s, err := NewFileStoreFromConfig()
	require.NoError(t, err)
	assert.Len(t, s.Regions(), len(consts.WHORegions))
	assert.Equal(t, consts.WHORegions[0].Name, s.DefaultRegion().Name)

	viper.Set("data.default_region", "Mars")
	_, err = NewFileStoreFromConfig()
	assert.ErrorIs(t, err, ErrUnknownRegion)
}
