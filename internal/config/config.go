package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"HEARTH_APP_NAME" default:"Hearth"`
	}

	Data struct {
		// Dir holds the source files and derived artifacts.
		Dir string `envconfig:"HEARTH_DATA_DIR" default:"finance"`

		ExpensesFile     string `envconfig:"HEARTH_EXPENSES_FILE" default:"expenses.csv"`
		AccountsFile     string `envconfig:"HEARTH_ACCOUNTS_FILE" default:"accounts.json"`
		IncomeFile       string `envconfig:"HEARTH_INCOME_FILE" default:"income.json"`
		ConsolidatedFile string `envconfig:"HEARTH_CONSOLIDATED_FILE" default:"consolidated.json"`
		FlaggedFile      string `envconfig:"HEARTH_FLAGGED_FILE" default:"flagged.json"`
		MerchantMapFile  string `envconfig:"HEARTH_MERCHANT_MAP_FILE" default:"merchant_map.json"`
		DedupFile        string `envconfig:"HEARTH_DEDUP_FILE" default:".dedup_keys"`
	}

	Export struct {
		HTMLFile string `envconfig:"HEARTH_EXPORT_HTML" default:"dashboard.html"`
	}

	Report struct {
		// LocalCurrency is the second currency shown next to USD in
		// the cash flow section.
		LocalCurrency string `envconfig:"HEARTH_LOCAL_CURRENCY" default:"GEL"`
	}
}

func (c *Config) ExpensesPath() string     { return filepath.Join(c.Data.Dir, c.Data.ExpensesFile) }
func (c *Config) AccountsPath() string     { return filepath.Join(c.Data.Dir, c.Data.AccountsFile) }
func (c *Config) IncomePath() string       { return filepath.Join(c.Data.Dir, c.Data.IncomeFile) }
func (c *Config) ConsolidatedPath() string { return filepath.Join(c.Data.Dir, c.Data.ConsolidatedFile) }
func (c *Config) FlaggedPath() string      { return filepath.Join(c.Data.Dir, c.Data.FlaggedFile) }
func (c *Config) MerchantMapPath() string  { return filepath.Join(c.Data.Dir, c.Data.MerchantMapFile) }
func (c *Config) DedupPath() string        { return filepath.Join(c.Data.Dir, c.Data.DedupFile) }
func (c *Config) ExportHTMLPath() string   { return filepath.Join(c.Data.Dir, c.Export.HTMLFile) }

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
