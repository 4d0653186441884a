package rules

import (
	"github.com/adanyl0v/checklist/internal/models"
	"github.com/adanyl0v/checklist/internal/questionnaire"
)

const (
	TitleEstateAttorney     = "Consult an estate planning attorney"
	TitleAdvanceDirective   = "Create an advance healthcare directive"
	TitleHealthcareProxy    = "Set up healthcare proxy"
	TitleAssetInventory     = "Create an inventory of assets and accounts"
	TitleBeneficiaryReview  = "Review beneficiary designations"
	TitleShareDocumentPlace = "Tell a trusted person where your documents are kept"
)

// PlanningAheadTable is evaluated for people organizing their own affairs,
// or a relative's, before a death.
func PlanningAheadTable() Table {
	return Table{
		Flow: questionnaire.FlowPlanningAhead,
		Rules: []Rule{
			{
				Name: "planning-anchors",
				When: Always(),
				Tasks: []TaskTemplate{
					Task(TitleAssetInventory, models.CategoryFinancial,
						"List accounts, policies, property and debts with institution names and contact details."),
					Task(TitleBeneficiaryReview, models.CategoryFinancial, ""),
				},
			},
			{
				Name: "no-will",
				When: Equals(KeyWillStatus, OptionNo),
				Tasks: []TaskTemplate{
					Task(TitleEstateAttorney, models.CategoryLegal, ""),
					Task("Draft a will", models.CategoryLegal, ""),
				},
			},
			{
				Name: "outdated-will",
				When: Equals(KeyWillStatus, WillNeedsUpdating),
				Tasks: []TaskTemplate{
					Task(TitleEstateAttorney, models.CategoryLegal, ""),
					Task("Update your will", models.CategoryLegal, ""),
				},
			},
			{
				Name: "advance-directive",
				When: OneOf(KeyHealthcareDirective, OptionNo, OptionNotSure),
				Tasks: []TaskTemplate{
					Task(TitleAdvanceDirective, models.CategoryHealthcare, ""),
					Task(TitleHealthcareProxy, models.CategoryHealthcare, ""),
				},
			},
			{
				Name: "health-concerns",
				When: Equals(KeyPlanningReason, ReasonHealth),
				Tasks: []TaskTemplate{
					Task(TitleHealthcareProxy, models.CategoryHealthcare, ""),
					Task("Review long-term care options", models.CategoryHealthcare, ""),
					Task("Discuss care preferences with family", categoryFamily, ""),
				},
			},
			{
				Name: "power-of-attorney",
				When: Equals(KeyPowerOfAttorney, OptionNo),
				Tasks: []TaskTemplate{
					Task("Designate a durable financial power of attorney", models.CategoryLegal, ""),
				},
			},
			{
				Name: "caring-for-relative",
				When: OneOf(KeyPlanningFor, PlanningForParent, PlanningForSpouse),
				Tasks: []TaskTemplate{
					Task("Get written authorization to speak with their providers", models.CategoryHealthcare, ""),
				},
			},
			{
				Name: "minor-children",
				When: AnyOf(Equals(KeyHasMinorChildren, OptionYes), Equals(KeyPlanningReason, ReasonNewFamily)),
				Tasks: []TaskTemplate{
					Task("Name a guardian for minor children", categoryFamily, ""),
				},
			},
			{
				Name: "home",
				When: Includes(KeyAssets, AssetHome),
				Tasks: []TaskTemplate{
					Task("Review how your home is titled", models.CategoryProperty, ""),
				},
			},
			{
				Name: "retirement",
				When: Includes(KeyAssets, AssetRetirement),
				Tasks: []TaskTemplate{
					Task("Confirm retirement account beneficiaries", models.CategoryFinancial, ""),
				},
			},
			{
				Name: "life-insurance",
				When: Includes(KeyAssets, AssetLife),
				Tasks: []TaskTemplate{
					Task("Confirm life insurance beneficiaries", models.CategoryInsurance, ""),
				},
			},
			{
				Name: "business",
				When: Includes(KeyAssets, AssetBusiness),
				Tasks: []TaskTemplate{
					Task("Create a business succession plan", models.CategoryFinancial, ""),
				},
			},
			{
				Name: "digital-assets",
				When: Includes(KeyAssets, AssetDigital),
				Tasks: []TaskTemplate{
					Task("Create a digital asset inventory and access plan", models.CategoryDigital, ""),
				},
			},
			{
				Name: "funeral-wishes",
				When: Equals(KeyFuneralWishes, FuneralWishesNotDocumented),
				Tasks: []TaskTemplate{
					Task("Document funeral and burial wishes", models.CategoryPersonal, ""),
				},
			},
			{
				Name: "state-requirements",
				When: JurisdictionKnown(KeyJurisdiction),
				Tasks: []TaskTemplate{
					Task("Check state-specific estate planning requirements", models.CategoryLegal, ""),
				},
			},
			{
				Name: "closing-anchors",
				When: Always(),
				Tasks: []TaskTemplate{
					Task(TitleShareDocumentPlace, models.CategoryPersonal, ""),
				},
			},
		},
	}
}
