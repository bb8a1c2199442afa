package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpaycheck/internal/logger"
	"github.com/fairpaycheck/fairpaycheck/internal/refdata"
	"github.com/fairpaycheck/fairpaycheck/internal/scoring"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single compensation profile and print the result as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("title", "", "job title, e.g. 'Senior Software Engineer'")
	scoreCmd.Flags().String("country", "", "country code, e.g. USA")
	scoreCmd.Flags().String("industry", "", "industry, e.g. technology")
	scoreCmd.Flags().Int("years", 0, "years of professional experience")
	scoreCmd.Flags().String("company-size", "", "company size: small, medium or large")
	scoreCmd.Flags().String("skills", "", "comma-separated skills")
	scoreCmd.Flags().Float64("salary", 0, "current salary in local currency")
	scoreCmd.Flags().Int("years-in-role", 0, "years in the current role")
	scoreCmd.Flags().Bool("promotion", false, "promotion received in the current role")
}

func score(cmd *cobra.Command) {
	appLogger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		appLogger.Fatal("getting a config", zap.Error(err))
	}

	dataset, err := loadDataset(config)
	if err != nil {
		appLogger.Fatal("loading reference data", zap.Error(err))
	}

	raw, err := collectInput(cmd, dataset)
	if err != nil {
		appLogger.Fatal("collecting input", zap.Error(err))
	}

	if err := validateEnums(raw, dataset); err != nil {
		appLogger.Fatal("invalid input", zap.Error(err))
	}

	in, err := scoring.DecodeInput(raw)
	if err != nil {
		appLogger.Fatal("decoding input", zap.Error(err))
	}

	engine := scoring.New(dataset, appLogger)
	result := engine.Evaluate(in)

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		appLogger.Fatal("encoding result", zap.Error(err))
	}

	fmt.Println(string(pretty))
}

// collectInput assembles the raw request map from flags, falling back to
// interactive prompts for any required value the flags did not provide.
func collectInput(cmd *cobra.Command, dataset *refdata.Dataset) (map[string]any, error) {
	raw := map[string]any{}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		var err error
		title, err = promptText("Job title", true)
		if err != nil {
			return nil, err
		}
	}
	raw["job_title"] = title

	country, _ := cmd.Flags().GetString("country")
	if country == "" {
		var err error
		country, err = promptOption("Country", dataset.Countries)
		if err != nil {
			return nil, err
		}
	}
	raw["country"] = country

	industry, _ := cmd.Flags().GetString("industry")
	if industry == "" {
		var err error
		industry, err = promptOption("Industry", dataset.Industries)
		if err != nil {
			return nil, err
		}
	}
	raw["industry"] = industry

	if cmd.Flags().Changed("years") {
		years, _ := cmd.Flags().GetInt("years")
		raw["years_experience"] = years
	} else {
		years, err := promptText("Years of experience", true)
		if err != nil {
			return nil, err
		}
		raw["years_experience"] = years
	}

	size, _ := cmd.Flags().GetString("company-size")
	if size == "" {
		var err error
		size, err = promptOption("Company size", dataset.CompanySizes)
		if err != nil {
			return nil, err
		}
	}
	raw["company_size"] = size

	skills, _ := cmd.Flags().GetString("skills")
	if skills == "" && !cmd.Flags().Changed("skills") {
		var err error
		skills, err = promptText("Skills (comma-separated, optional)", false)
		if err != nil {
			return nil, err
		}
	}
	if skills != "" {
		raw["skills"] = skills
	}

	if cmd.Flags().Changed("salary") {
		salary, _ := cmd.Flags().GetFloat64("salary")
		raw["salary"] = salary
	} else {
		salary, err := promptText("Current salary in local currency (optional)", false)
		if err != nil {
			return nil, err
		}
		if salary != "" {
			raw["salary"] = salary
		}
	}

	if cmd.Flags().Changed("years-in-role") {
		yearsInRole, _ := cmd.Flags().GetInt("years-in-role")
		raw["years_in_role"] = yearsInRole
	}

	if cmd.Flags().Changed("promotion") {
		promoted, _ := cmd.Flags().GetBool("promotion")
		raw["promotion_received"] = promoted
	} else if !cmd.Flags().Changed("years-in-role") && !anyRequiredFlagSet(cmd) {
		// Fully interactive session: ask about promotions too.
		prompt := promptui.Select{
			Label: "Promotion received in the current role?",
			Items: []string{PromptNo, PromptYes},
		}
		_, answer, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		raw["promotion_received"] = answer == PromptYes
	}

	return raw, nil
}

func anyRequiredFlagSet(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "country", "industry", "years", "company-size"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func promptText(label string, required bool) (string, error) {
	prompt := promptui.Prompt{Label: label}
	if required {
		prompt.Validate = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("a value is required")
			}
			return nil
		}
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func promptOption(label string, options []refdata.Option) (string, error) {
	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Label)
	}

	prompt := promptui.Select{Label: label, Items: labels}
	index, _, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return options[index].Value, nil
}

func validateEnums(raw map[string]any, dataset *refdata.Dataset) error {
	country, _ := raw["country"].(string)
	if !containsValue(dataset.CountryValues(), country) {
		return fmt.Errorf("invalid country %q, must be one of: %s", country, strings.Join(dataset.CountryValues(), ", "))
	}

	size, _ := raw["company_size"].(string)
	if !containsValue(dataset.CompanySizeValues(), size) {
		return fmt.Errorf("invalid company size %q, must be one of: %s", size, strings.Join(dataset.CompanySizeValues(), ", "))
	}

	if years, ok := raw["years_experience"].(string); ok {
		if _, err := strconv.Atoi(years); err != nil {
			return fmt.Errorf("years of experience must be a whole number, got %q", years)
		}
	}

	return nil
}

func containsValue(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
