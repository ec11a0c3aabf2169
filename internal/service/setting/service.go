package setting

import (
	"context"
	"strconv"

	"github.com/staffbook/staffbook-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo}
}

func (s *SettingServiceImpl) GetSettings(ctx context.Context) (setting.SettingsResponse, error) {
	workingDays, err := s.WorkingDays(ctx)
	if err != nil {
		return setting.SettingsResponse{}, err
	}
	cycleStart, cycleEnd, err := s.SalaryCycle(ctx)
	if err != nil {
		return setting.SettingsResponse{}, err
	}

	accountSID, _, err := s.settingRepo.Get(ctx, setting.KeyTwilioAccountSID)
	if err != nil {
		return setting.SettingsResponse{}, err
	}
	fromNumber, _, err := s.settingRepo.Get(ctx, setting.KeyTwilioFromNumber)
	if err != nil {
		return setting.SettingsResponse{}, err
	}

	return setting.SettingsResponse{
		WorkingDays:      workingDays,
		SalaryCycleStart: cycleStart,
		SalaryCycleEnd:   cycleEnd,
		TwilioAccountSID: accountSID,
		TwilioFromNumber: fromNumber,
	}, nil
}

func (s *SettingServiceImpl) UpdateSettings(ctx context.Context, req setting.UpdateSettingsRequest) (setting.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.SettingsResponse{}, err
	}

	updates := map[string]*string{
		setting.KeyTwilioAccountSID: req.TwilioAccountSID,
		setting.KeyTwilioAuthToken:  req.TwilioAuthToken,
		setting.KeyTwilioFromNumber: req.TwilioFromNumber,
	}
	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := s.settingRepo.Upsert(ctx, key, *value); err != nil {
			return setting.SettingsResponse{}, err
		}
	}

	intUpdates := map[string]*int{
		setting.KeyWorkingDays:      req.WorkingDays,
		setting.KeySalaryCycleStart: req.SalaryCycleStart,
		setting.KeySalaryCycleEnd:   req.SalaryCycleEnd,
	}
	for key, value := range intUpdates {
		if value == nil {
			continue
		}
		if err := s.settingRepo.Upsert(ctx, key, strconv.Itoa(*value)); err != nil {
			return setting.SettingsResponse{}, err
		}
	}

	return s.GetSettings(ctx)
}

func (s *SettingServiceImpl) WorkingDays(ctx context.Context) (int, error) {
	return s.intSetting(ctx, setting.KeyWorkingDays, setting.DefaultWorkingDays)
}

func (s *SettingServiceImpl) SalaryCycle(ctx context.Context) (int, int, error) {
	start, err := s.intSetting(ctx, setting.KeySalaryCycleStart, setting.DefaultSalaryCycleStart)
	if err != nil {
		return 0, 0, err
	}
	end, err := s.intSetting(ctx, setting.KeySalaryCycleEnd, setting.DefaultSalaryCycleEnd)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// intSetting resolves a numeric key. Missing or malformed values fall
// back to the default rather than erroring.
func (s *SettingServiceImpl) intSetting(ctx context.Context, key string, def int) (int, error) {
	value, ok, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def, nil
	}
	return parsed, nil
}
