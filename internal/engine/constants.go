// Balance constants. These encode the game's central tension: honest
// fishing is slow and safe, crime is fast and compounding.
package engine

const (
	// Crew economics.
	crewProfitShare    = 0.50 // crew takes half the net by default
	crewGreedSkim      = 0.50 // extra fraction of the owner share skimmed
	crewGreedChance    = 0.20
	lowMoraleThreshold = 42

	// Cognitive decline cuts effective boat capacity.
	declineEfficiency = 0.8

	// Smuggling.
	smugglingProfit        = 42000
	smugglingCaptureChance = 0.16
	smugglingSuspicion     = 10

	// Investigation and the lawyer.
	suspicionInvestigationThreshold = 104
	lawyerFee                       = 420000
	lawyerFameGain                  = 20
	lawyerReputationLoss            = 5
	lawyerSuspicionRelief           = 50

	// Bonds.
	bondAnnualReturn = 0.042

	// Heir and succession.
	heirCost              = 42000
	heirMinReputation     = 20
	heirReputationBonus   = 5
	heirSkipTurns         = 2
	inheritanceTaxRate    = 0.20
	heirReputationRebuild = 50
	conflictBaseChance    = 0.16
	conflictWealthyBonus  = 0.10 // above 1M, again above 5M
	conflictLowRepBonus   = 0.15 // below reputation 30

	// Health and nutrition.
	b12DepletionPerTrip       = 2
	doctorVisitCost           = 4200
	doctorHealthRestore       = 20
	teethLossB12Threshold     = 42
	teethLossChance           = 0.16
	cognitiveDeclineThreshold = 20
	healthLossB12Threshold    = 50
	healthDegradationRate     = 1

	// Conspiracy theories.
	conspiracyEncounterChance = 0.05
	conspiracyListenChance    = 0.30
	conspiracySafeExposure    = 5
	conspiracyFatalExposure   = 20

	// Politics.
	politicalSupportMinFame   = 50
	politicalCapitalPerKronur = 10000
	politicalAttackCost       = 50
	electionWinThreshold      = 420

	// Export trips.
	exportUpkeepFactor = 2
	disasterReputation = 10
	disasterMorale     = 20

	// Svartur dagur: losing a crew with family ties aboard.
	svarturDagurReputationBase = 30
	svarturDagurReputationStep = 10 // per family wiped out
	svarturDagurMorale         = 50
	mourningYears              = 5

	// Trip morale and seasoning.
	goodTripMorale         = 5
	badTripMorale          = 3
	experienceCatchPerTrip = 0.005 // catch bonus per average trip logged
	experienceCatchCap     = 0.25

	// Removal rules, checked at round end.
	insolvencyRoundLimit = 3
	liquidityFloor       = 42000 // boatless companies below this dissolve
)
