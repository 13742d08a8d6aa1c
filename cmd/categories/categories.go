// Package categories handles taxonomy inspection and custom categories
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"warren/finparse/cmd/root"
	"warren/finparse/internal/models"
	"warren/finparse/internal/taxonomy"
)

var (
	statementType string
	locale        string

	key          string
	labelEN      string
	labelES      string
	inflow       bool
	addStatement string
	catType      string
	group        string
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category taxonomy",
	Long: `Categories lists the default category taxonomy, merged with a
company's custom categories when --company is given.`,
	Run: listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a custom category for a company",
	Run:   addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&statementType, "statement", "s", "", "Filter by statement type (profit_loss, balance_sheet, cash_flow)")
	Cmd.Flags().StringVarP(&locale, "locale", "l", models.LocaleEnglish, "Label locale (en, es)")

	addCmd.Flags().StringVarP(&key, "key", "k", "", "Category key (lowercase_underscore, required)")
	addCmd.Flags().StringVar(&labelEN, "label-en", "", "English label")
	addCmd.Flags().StringVar(&labelES, "label-es", "", "Spanish label")
	addCmd.Flags().BoolVar(&inflow, "inflow", false, "Category represents money received")
	addCmd.Flags().StringVarP(&addStatement, "statement", "s", string(models.StatementProfitLoss), "Statement type")
	addCmd.Flags().StringVarP(&catType, "type", "t", string(models.CategoryTypeAccount), "Category type (account, section, total)")
	addCmd.Flags().StringVarP(&group, "group", "g", "", "Reporting group")
	_ = addCmd.MarkFlagRequired("key")

	Cmd.AddCommand(addCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	registry, err := root.Registry()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load taxonomy")
	}

	definitions := registry.All()
	if statementType != "" {
		definitions = registry.ForStatement(models.StatementType(statementType))
	}

	for _, def := range definitions {
		polarity := "outflow"
		if def.IsInflow {
			polarity = "inflow"
		}
		marker := ""
		if def.IsCustom {
			marker = " (custom)"
		}
		fmt.Printf("%-28s %-32s %-13s %-8s %s%s\n",
			def.Key, def.Label(locale), def.StatementType, polarity, def.CategoryType, marker)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	company := root.SharedFlags.Company
	if company == "" {
		root.Log.Fatal("A company id is required to create a custom category")
	}

	def := models.CategoryDefinition{
		Key:           key,
		Labels:        map[string]string{},
		IsInflow:      inflow,
		StatementType: models.StatementType(addStatement),
		CategoryType:  models.CategoryType(catType),
		Group:         group,
	}
	if labelEN != "" {
		def.Labels[models.LocaleEnglish] = labelEN
	}
	if labelES != "" {
		def.Labels[models.LocaleSpanish] = labelES
	}

	store := taxonomy.NewCustomStore(root.Cfg.Taxonomy.CustomCategoriesFile, root.Log)
	if err := store.Create(company, def); err != nil {
		root.Log.WithError(err).Fatal("Failed to create custom category")
	}
	root.Log.WithField("category", key).Info("Custom category created")
}
