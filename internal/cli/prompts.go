package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"finassist/internal/profile"
)

// PromptForProfile walks the user through onboarding and captures the
// profile that shapes the chat session.
func PromptForProfile() (profile.UserProfile, error) {
	var p profile.UserProfile

	namePrompt := &survey.Input{
		Message: "What is your full name?",
	}
	if err := survey.AskOne(namePrompt, &p.FullName, survey.WithValidator(func(val interface{}) error {
		if strings.TrimSpace(val.(string)) == "" {
			return fmt.Errorf("full name cannot be empty")
		}
		return nil
	})); err != nil {
		return p, err
	}

	birthPrompt := &survey.Input{
		Message: "Birth date (YYYY-MM-DD):",
	}
	if err := survey.AskOne(birthPrompt, &p.BirthDate); err != nil {
		return p, err
	}

	knowledge, err := promptKnowledgeLevel()
	if err != nil {
		return p, err
	}
	p.KnowledgeLevel = knowledge

	risk, err := promptRiskTolerance()
	if err != nil {
		return p, err
	}
	p.RiskTolerance = risk

	objectives, err := promptObjectives()
	if err != nil {
		return p, err
	}
	p.Objectives = objectives

	interests, err := promptAssetInterests()
	if err != nil {
		return p, err
	}
	p.AssetInterests = interests

	if err := survey.AskOne(&survey.Input{Message: "Monthly income:"}, &p.MonthlyIncome); err != nil {
		return p, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Amount available to invest:"}, &p.InvestmentAmount); err != nil {
		return p, err
	}
	if err := survey.AskOne(&survey.Select{
		Message: "Liquidity preference:",
		Options: []string{"daily", "short term", "long term"},
		Default: "short term",
	}, &p.LiquidityPreference); err != nil {
		return p, err
	}

	contribution, err := promptMonthlyContribution()
	if err != nil {
		return p, err
	}
	p.MonthlyContribution = contribution

	return p, nil
}

func promptKnowledgeLevel() (profile.KnowledgeLevel, error) {
	var selected string
	prompt := &survey.Select{
		Message: "How familiar are you with investing?",
		Options: []string{
			string(profile.KnowledgeBeginner),
			string(profile.KnowledgeIntermediate),
			string(profile.KnowledgeAdvanced),
		},
		Default: string(profile.KnowledgeBeginner),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return profile.KnowledgeLevel(selected), nil
}

func promptRiskTolerance() (profile.RiskTolerance, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Risk tolerance:",
		Options: []string{
			string(profile.RiskConservative),
			string(profile.RiskModerate),
			string(profile.RiskAggressive),
		},
		Default: string(profile.RiskModerate),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return profile.RiskTolerance(selected), nil
}

const (
	objRealEstate       = "Buy real estate"
	objRetirement       = "Retirement"
	objShortTermProfit  = "Short-term profit"
	objEmergencyReserve = "Emergency reserve"
	objOther            = "Other"
)

func promptObjectives() (profile.Objectives, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Investment objectives:",
		Options: []string{objRealEstate, objRetirement, objShortTermProfit, objEmergencyReserve, objOther},
		Help:    "Use space to select, enter to confirm.",
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return profile.Objectives{}, err
	}

	var objectives profile.Objectives
	for _, choice := range selected {
		switch choice {
		case objRealEstate:
			objectives.RealEstate = true
		case objRetirement:
			objectives.Retirement = true
		case objShortTermProfit:
			objectives.ShortTermProfit = true
		case objEmergencyReserve:
			objectives.EmergencyReserve = true
		case objOther:
			objectives.Other = true
		}
	}

	if objectives.Other {
		if err := survey.AskOne(&survey.Input{Message: "Describe your other objective:"}, &objectives.OtherText); err != nil {
			return objectives, err
		}
	}
	return objectives, nil
}

const (
	assetCrypto          = "Crypto"
	assetStocks          = "Stocks"
	assetFixedIncome     = "Fixed income"
	assetRealEstateFunds = "Real estate funds"
)

func promptAssetInterests() (profile.AssetInterests, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Asset classes you are interested in:",
		Options: []string{assetCrypto, assetStocks, assetFixedIncome, assetRealEstateFunds},
		Help:    "Use space to select, enter to confirm.",
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return profile.AssetInterests{}, err
	}

	var interests profile.AssetInterests
	for _, choice := range selected {
		switch choice {
		case assetCrypto:
			interests.Crypto = true
		case assetStocks:
			interests.Stocks = true
		case assetFixedIncome:
			interests.FixedIncome = true
		case assetRealEstateFunds:
			interests.RealEstateFunds = true
		}
	}
	return interests, nil
}

func promptMonthlyContribution() (profile.MonthlyContribution, error) {
	var contribution profile.MonthlyContribution
	confirm := &survey.Confirm{
		Message: "Do you plan a recurring monthly contribution?",
		Default: false,
	}
	if err := survey.AskOne(confirm, &contribution.HasContribution); err != nil {
		return contribution, err
	}
	if contribution.HasContribution {
		if err := survey.AskOne(&survey.Input{Message: "Monthly contribution amount:"}, &contribution.Amount); err != nil {
			return contribution, err
		}
	}
	return contribution, nil
}
