package rules

import (
	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/questionnaire"
)

var categoryFamily = models.CustomCategory("family")

const (
	TitleDeathCertificate  = "Order certified copies of the death certificate"
	TitleNotifyBanks       = "Notify banks and freeze or retitle accounts"
	TitleCancelCreditCards = "Cancel credit cards and stop automatic payments"
	TitleCreditBureaus     = "Notify the three credit bureaus"
	TitleHomeInsurance     = "Review homeowners or renters insurance"
)

// RecentLossTable is evaluated for people handling the affairs of someone
// who has died.
func RecentLossTable() Table {
	return Table{
		Flow: questionnaire.FlowRecentLoss,
		Rules: []Rule{
			{
				Name: "immediate-anchors",
				When: Always(),
				Tasks: []TaskTemplate{
					Task(TitleDeathCertificate, models.CategoryImmediate,
						"Most institutions ask for an original certified copy; order ten or more from the funeral home or vital records office."),
					Task("Gather important documents", models.CategoryLegal,
						"Collect the will, deeds, titles, account statements, insurance policies and tax returns in one place."),
				},
			},
			{
				Name: "funeral",
				When: OneOf(KeyFuneralArranged, OptionNo, FuneralInProgress),
				Tasks: []TaskTemplate{
					Task("Arrange funeral or memorial service", models.CategoryImmediate, ""),
					Task("Write and publish an obituary", models.CategoryImmediate, ""),
				},
			},
			{
				Name: "pets",
				When: Equals(KeyHasPets, OptionYes),
				Tasks: []TaskTemplate{
					Task("Arrange care for pets", models.CategoryImmediate, ""),
				},
			},
			{
				Name: "dependents",
				When: Equals(KeyHadDependents, OptionYes),
				Tasks: []TaskTemplate{
					Task("Arrange guardianship or support for dependents", categoryFamily, ""),
				},
			},
			{
				Name: "will-located",
				When: Equals(KeyDeceasedHadWill, OptionYes),
				Tasks: []TaskTemplate{
					Task("Locate the original will", models.CategoryLegal, ""),
				},
			},
			{
				Name: "executor-with-will",
				When: AllOf(Equals(KeyIsExecutor, OptionYes), Equals(KeyDeceasedHadWill, OptionYes)),
				Tasks: []TaskTemplate{
					Task("File the will with the probate court", models.CategoryLegal, ""),
					Task("Obtain letters testamentary", models.CategoryLegal, ""),
				},
			},
			{
				Name: "intestate",
				When: Equals(KeyDeceasedHadWill, OptionNo),
				Tasks: []TaskTemplate{
					Task("Determine heirs under state intestacy law", models.CategoryLegal, ""),
					Task("Apply for letters of administration", models.CategoryLegal, ""),
				},
			},
			{
				Name: "executor-duties",
				When: Equals(KeyIsExecutor, OptionYes),
				Tasks: []TaskTemplate{
					Task("Obtain an EIN for the estate", models.CategoryFinancial, ""),
					Task("Open an estate bank account", models.CategoryFinancial, ""),
					Task("Notify creditors of the death", models.CategoryLegal, ""),
				},
			},
			{
				Name: "probate-court",
				When: JurisdictionKnown(KeyJurisdiction),
				Tasks: []TaskTemplate{
					Task("Contact the local probate court", models.CategoryLegal,
						"Ask whether the estate qualifies for a simplified or small-estate procedure."),
				},
			},
			{
				Name: "county-records",
				When: CountyKnown(KeyJurisdiction),
				Tasks: []TaskTemplate{
					Task("Check county recorder requirements for property transfers", models.CategoryProperty, ""),
				},
			},
			{
				Name: "bank-accounts",
				When: Includes(KeyFinancialAccounts, AccountBank),
				Tasks: []TaskTemplate{
					Task(TitleNotifyBanks, models.CategoryFinancial, ""),
				},
			},
			{
				Name: "credit-cards",
				When: Includes(KeyFinancialAccounts, AccountCredit),
				Tasks: []TaskTemplate{
					Task(TitleCancelCreditCards, models.CategoryFinancial, ""),
					Task(TitleCreditBureaus, models.CategoryFinancial,
						"Ask Equifax, Experian and TransUnion to flag the credit file as deceased."),
				},
			},
			{
				Name: "retirement-accounts",
				When: Includes(KeyFinancialAccounts, AccountRetirement),
				Tasks: []TaskTemplate{
					Task("Claim retirement account benefits", models.CategoryFinancial, ""),
				},
			},
			{
				Name: "investment-accounts",
				When: Includes(KeyFinancialAccounts, AccountInvestment),
				Tasks: []TaskTemplate{
					Task("Transfer or retitle investment accounts", models.CategoryFinancial, ""),
				},
			},
			{
				Name: "loans",
				When: Includes(KeyFinancialAccounts, AccountLoans),
				Tasks: []TaskTemplate{
					Task("Notify lenders and mortgage servicers", models.CategoryFinancial, ""),
					Task(TitleCreditBureaus, models.CategoryFinancial,
						"Ask Equifax, Experian and TransUnion to flag the credit file as deceased."),
				},
			},
			{
				Name: "home",
				When: Includes(KeyProperty, PropertyHome),
				Tasks: []TaskTemplate{
					Task("Secure the home and change the locks", models.CategoryProperty, ""),
					Task(TitleHomeInsurance, models.CategoryInsurance, ""),
				},
			},
			{
				Name: "vehicles",
				When: Includes(KeyProperty, PropertyVehicle),
				Tasks: []TaskTemplate{
					Task("Transfer vehicle titles", models.CategoryProperty, ""),
				},
			},
			{
				Name: "rental-property",
				When: Includes(KeyProperty, PropertyRental),
				Tasks: []TaskTemplate{
					Task("Notify tenants and arrange rental property management", models.CategoryProperty, ""),
				},
			},
			{
				Name: "storage-unit",
				When: Includes(KeyProperty, PropertyStorage),
				Tasks: []TaskTemplate{
					Task("Empty or transfer the storage unit", models.CategoryProperty, ""),
				},
			},
			{
				Name: "life-insurance",
				When: Includes(KeyInsurance, InsuranceLife),
				Tasks: []TaskTemplate{
					Task("File life insurance claims", models.CategoryInsurance, ""),
				},
			},
			{
				Name: "health-insurance",
				When: Includes(KeyInsurance, InsuranceHealth),
				Tasks: []TaskTemplate{
					Task("Cancel health insurance coverage", models.CategoryInsurance, ""),
				},
			},
			{
				Name: "home-insurance",
				When: Includes(KeyInsurance, InsuranceHome),
				Tasks: []TaskTemplate{
					Task(TitleHomeInsurance, models.CategoryInsurance, ""),
				},
			},
			{
				Name: "auto-insurance",
				When: Includes(KeyInsurance, InsuranceAuto),
				Tasks: []TaskTemplate{
					Task("Update or cancel auto insurance", models.CategoryInsurance, ""),
				},
			},
			{
				Name: "social-security",
				When: Always(),
				Tasks: []TaskTemplate{
					Task("Notify the Social Security Administration", models.CategoryBenefits, ""),
				},
			},
			{
				Name: "survivor-benefits",
				When: AllOf(
					Includes(KeyBenefits, BenefitSocialSecurity),
					OneOf(KeyRelationship, RelationshipSpouse, RelationshipChild),
				),
				Tasks: []TaskTemplate{
					Task("Apply for Social Security survivor benefits", models.CategoryBenefits, ""),
				},
			},
			{
				Name: "pension",
				When: Includes(KeyBenefits, BenefitPension),
				Tasks: []TaskTemplate{
					Task("Notify the pension administrator", models.CategoryBenefits, ""),
				},
			},
			{
				Name: "veterans",
				When: AnyOf(Includes(KeyBenefits, BenefitVeterans), Equals(KeyWasVeteran, OptionYes)),
				Tasks: []TaskTemplate{
					Task("Request VA burial and survivor benefits", models.CategoryBenefits, ""),
				},
			},
			{
				Name: "employer",
				When: Equals(KeyEmployedAtDeath, OptionYes),
				Tasks: []TaskTemplate{
					Task("Contact the employer about final pay and benefits", models.CategoryBenefits, ""),
				},
			},
			{
				Name: "email",
				When: Includes(KeyDigitalAccounts, DigitalEmail),
				Tasks: []TaskTemplate{
					Task("Close or memorialize email accounts", models.CategoryDigital, ""),
				},
			},
			{
				Name: "social-media",
				When: Includes(KeyDigitalAccounts, DigitalSocialMedia),
				Tasks: []TaskTemplate{
					Task("Memorialize or close social media accounts", models.CategoryDigital, ""),
				},
			},
			{
				Name: "phone-plan",
				When: Includes(KeyDigitalAccounts, DigitalPhone),
				Tasks: []TaskTemplate{
					Task("Cancel or transfer the phone plan", models.CategoryDigital, ""),
				},
			},
			{
				Name: "subscriptions",
				When: Includes(KeyDigitalAccounts, DigitalSubscriptions),
				Tasks: []TaskTemplate{
					Task("Cancel subscriptions and memberships", models.CategoryDigital, ""),
				},
			},
			{
				Name: "closing-anchors",
				When: Always(),
				Tasks: []TaskTemplate{
					Task("Forward or hold mail", models.CategoryPersonal, ""),
					Task("File final income tax returns", models.CategoryFinancial, ""),
				},
			},
		},
	}
}
