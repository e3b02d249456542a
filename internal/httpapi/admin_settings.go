package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nikolayk812/gallery-shop/internal/domain"
)

type settingRequest struct {
	Text        string `json:"text"`
	Description string `json:"description"`
}

func (s *server) adminListSettings(c *fiber.Ctx) error {
	settings, err := s.Settings.List(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]settingDTO, 0, len(settings))
	for _, setting := range settings {
		out = append(out, toSettingDTO(setting))
	}

	return c.JSON(out)
}

func (s *server) adminShowSetting(c *fiber.Ctx) error {
	setting, err := s.Settings.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return err
	}

	return c.JSON(toSettingDTO(setting))
}

func (s *server) adminSetSetting(c *fiber.Ctx) error {
	var req settingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("malformed request body")
	}

	saved, err := s.Settings.Set(c.UserContext(), domain.Setting{
		Key:         c.Params("key"),
		Text:        req.Text,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(toSettingDTO(saved))
}

func (s *server) adminDeleteSetting(c *fiber.Ctx) error {
	if err := s.Settings.Delete(c.UserContext(), c.Params("key")); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
