// Action kinds and resolution dispatch. A resolver either refuses with
// a failure code and no state change, or resolves fully, including the
// bad outcomes. A boat lost at sea is a resolved action, not an error.
package engine

import (
	"github.com/talgya/togaraveldi/internal/company"
)

// ActionKind names a resolvable company action.
type ActionKind string

const (
	ActionDomesticTrip     ActionKind = "domestic_trip"
	ActionExportTrip       ActionKind = "export_trip"
	ActionSmuggle          ActionKind = "smuggle"
	ActionInvestBonds      ActionKind = "invest_bonds"
	ActionBuyBoat          ActionKind = "buy_boat"
	ActionSellBoat         ActionKind = "sell_boat"
	ActionBuyUpgrade       ActionKind = "buy_upgrade"
	ActionSecureHeir       ActionKind = "secure_heir"
	ActionVisitDoctor      ActionKind = "visit_doctor"
	ActionCallLawyer       ActionKind = "call_lawyer"
	ActionPoliticalSupport ActionKind = "political_support"
	ActionPoliticalAttack  ActionKind = "political_attack"
	ActionInvestSupplies   ActionKind = "invest_supplies"
	ActionIdle             ActionKind = "idle"
)

// Action is a company's chosen move for the turn.
type Action struct {
	Kind        ActionKind
	Amount      int64  // bonds, political support, supply investments
	BlueprintID string // buy_boat
	InstanceID  string // sell_boat, buy_upgrade
	UpgradeID   string // buy_upgrade
	Target      string // political_attack: target company name
	Category    string // invest_supplies: ledger category
}

// OutcomeCode classifies how an action resolved.
type OutcomeCode string

const (
	OutcomeOK                OutcomeCode = "ok"
	OutcomeInsufficientFunds OutcomeCode = "insufficient_funds"
	OutcomeIneligible        OutcomeCode = "ineligible"
	OutcomeDisaster          OutcomeCode = "disaster_at_sea"
)

// Outcome is a resolver's structured result. Failure codes mean nothing
// was mutated; OutcomeDisaster means the action happened and went badly.
type Outcome struct {
	Code   OutcomeCode
	Detail string
}

func ok() Outcome                                  { return Outcome{Code: OutcomeOK} }
func fail(code OutcomeCode, detail string) Outcome { return Outcome{Code: code, Detail: detail} }

// resolve dispatches an action to its resolver.
func (g *Game) resolve(c *company.Company, act Action) Outcome {
	switch act.Kind {
	case ActionDomesticTrip:
		return g.resolveDomesticTrip(c)
	case ActionExportTrip:
		return g.resolveExportTrip(c)
	case ActionSmuggle:
		return g.resolveSmuggling(c)
	case ActionInvestBonds:
		return g.resolveBondInvestment(c, act.Amount)
	case ActionBuyBoat:
		return g.resolveBoatPurchase(c, act.BlueprintID)
	case ActionSellBoat:
		return g.resolveBoatSale(c, act.InstanceID)
	case ActionBuyUpgrade:
		return g.resolveUpgradePurchase(c, act.InstanceID, act.UpgradeID)
	case ActionSecureHeir:
		return g.resolveSecureHeir(c)
	case ActionVisitDoctor:
		return g.resolveDoctorVisit(c)
	case ActionCallLawyer:
		return g.resolveCallLawyer(c)
	case ActionPoliticalSupport:
		return g.resolvePoliticalSupport(c, act.Amount)
	case ActionPoliticalAttack:
		return g.resolvePoliticalAttack(c, act.Target)
	case ActionInvestSupplies:
		return g.resolveSupplyInvestment(c, act.Category, act.Amount)
	case ActionIdle:
		return ok()
	default:
		return fail(OutcomeIneligible, "unknown action")
	}
}
