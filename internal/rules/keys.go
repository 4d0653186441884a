package rules

// Question keys. They must match the questionnaire definition exactly.
const (
	KeyRelationship      = "relationship"
	KeyIsExecutor        = "is_executor"
	KeyDeceasedHadWill   = "deceased_had_will"
	KeyJurisdiction      = "jurisdiction"
	KeyFuneralArranged   = "funeral_arranged"
	KeyFinancialAccounts = "financial_accounts"
	KeyProperty          = "property"
	KeyInsurance         = "insurance"
	KeyBenefits          = "benefits"
	KeyDigitalAccounts   = "digital_accounts"
	KeyHadDependents     = "had_dependents"
	KeyWasVeteran        = "was_veteran"
	KeyEmployedAtDeath   = "employed_at_death"
	KeyHasPets           = "has_pets"

	KeyPlanningReason      = "planning_reason"
	KeyPlanningFor         = "planning_for"
	KeyWillStatus          = "will_status"
	KeyHealthcareDirective = "healthcare_directive"
	KeyPowerOfAttorney     = "power_of_attorney"
	KeyHasMinorChildren    = "has_minor_children"
	KeyAssets              = "assets"
	KeyFuneralWishes       = "funeral_wishes"
)

// Option literals shared by several questions.
const (
	OptionYes     = "Yes"
	OptionNo      = "No"
	OptionNotSure = "Not sure"
)

const (
	RelationshipSpouse = "Spouse or partner"
	RelationshipChild  = "Child"
	RelationshipParent = "Parent"
	RelationshipOther  = "Other"

	FuneralInProgress = "In progress"

	AccountBank       = "Bank accounts"
	AccountCredit     = "Credit cards"
	AccountRetirement = "Retirement accounts"
	AccountInvestment = "Investment or brokerage accounts"
	AccountLoans      = "Loans or mortgages"

	PropertyHome    = "Home"
	PropertyVehicle = "Vehicles"
	PropertyRental  = "Rental property"
	PropertyStorage = "Storage unit"

	InsuranceLife   = "Life insurance"
	InsuranceHealth = "Health insurance"
	InsuranceHome   = "Homeowners or renters insurance"
	InsuranceAuto   = "Auto insurance"

	BenefitSocialSecurity = "Social Security"
	BenefitPension        = "Pension"
	BenefitVeterans       = "Veterans benefits"

	DigitalEmail         = "Email"
	DigitalSocialMedia   = "Social media"
	DigitalPhone         = "Phone plan"
	DigitalSubscriptions = "Subscriptions"
)

const (
	ReasonHealth      = "Health concerns"
	ReasonAge         = "Getting older"
	ReasonNewFamily   = "New family member"
	ReasonPreparation = "Being prepared"

	PlanningForSelf   = "Myself"
	PlanningForParent = "A parent"
	PlanningForSpouse = "A spouse or partner"

	WillUpToDate      = "Yes, up to date"
	WillNeedsUpdating = "Yes, needs updating"

	AssetHome       = "Home"
	AssetRetirement = "Retirement accounts"
	AssetLife       = "Life insurance"
	AssetBusiness   = "Business interests"
	AssetDigital    = "Digital assets"

	FuneralWishesDocumented    = "Documented"
	FuneralWishesNotDocumented = "Not documented"
)

// BuiltinVocabulary is the option vocabulary of the questionnaire shipped
// with the product. Tables are checked against it in tests.
func BuiltinVocabulary() Vocabulary {
	yesNo := []string{OptionYes, OptionNo}
	yesNoUnsure := []string{OptionYes, OptionNo, OptionNotSure}
	return Vocabulary{
		KeyRelationship:      {RelationshipSpouse, RelationshipChild, RelationshipParent, RelationshipOther},
		KeyIsExecutor:        yesNoUnsure,
		KeyDeceasedHadWill:   yesNoUnsure,
		KeyJurisdiction:      nil,
		KeyFuneralArranged:   {OptionYes, OptionNo, FuneralInProgress},
		KeyFinancialAccounts: {AccountBank, AccountCredit, AccountRetirement, AccountInvestment, AccountLoans},
		KeyProperty:          {PropertyHome, PropertyVehicle, PropertyRental, PropertyStorage},
		KeyInsurance:         {InsuranceLife, InsuranceHealth, InsuranceHome, InsuranceAuto},
		KeyBenefits:          {BenefitSocialSecurity, BenefitPension, BenefitVeterans},
		KeyDigitalAccounts:   {DigitalEmail, DigitalSocialMedia, DigitalPhone, DigitalSubscriptions},
		KeyHadDependents:     yesNo,
		KeyWasVeteran:        yesNo,
		KeyEmployedAtDeath:   yesNo,
		KeyHasPets:           yesNo,

		KeyPlanningReason:      {ReasonHealth, ReasonAge, ReasonNewFamily, ReasonPreparation},
		KeyPlanningFor:         {PlanningForSelf, PlanningForParent, PlanningForSpouse},
		KeyWillStatus:          {WillUpToDate, WillNeedsUpdating, OptionNo},
		KeyHealthcareDirective: yesNoUnsure,
		KeyPowerOfAttorney:     yesNoUnsure,
		KeyHasMinorChildren:    yesNo,
		KeyAssets:              {AssetHome, AssetRetirement, AssetLife, AssetBusiness, AssetDigital},
		KeyFuneralWishes:       {FuneralWishesDocumented, FuneralWishesNotDocumented},
	}
}
