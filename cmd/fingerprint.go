package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oranolio956/qa-automation-framework-sub005/internal/observability"
	"github.com/oranolio956/qa-automation-framework-sub005/pkg/fingerprint"
)

var fingerprintDeviceKey string

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint",
	Short: "Derive the deterministic device fingerprint for a device key.",
	Long: `Derives the synthetic device identity for the given key. The same key
always yields the same identity; omit --device-key to fingerprint a freshly
generated random key instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := fingerprintDeviceKey
		if key == "" {
			key = uuid.NewString()
			observability.GetLogger().Info("no device key supplied, generated one",
				zap.String("device_key", key))
		}

		fp := fingerprint.Generate(key)
		observability.GetLogger().Debug("fingerprint derived",
			zap.String("device_key", fp.DeviceKey),
			zap.String("identity", fp.String()),
			zap.Int("scheme_version", fingerprint.SchemeVersion))

		return printJSON(fp)
	},
}

func init() {
	fingerprintCmd.Flags().StringVarP(&fingerprintDeviceKey, "device-key", "k", "", "stable device key (e.g. an emulator serial)")
}
