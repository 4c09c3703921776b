package progress

import (
	"errors"
	"math"

	"tracker/backend/models"
)

// ErrZeroDuration возвращается, когда у курса неположительная длительность —
// деление при пересчёте прогресса для такого курса не определено.
var ErrZeroDuration = errors.New("course duration must be positive")

// Percent вычисляет процент прохождения: clamp(round(total*100/(durationHours*60)), 0, 100)
func Percent(totalMinutes int, durationHours float64) (int, error) {
	if durationHours <= 0 {
		return 0, ErrZeroDuration
	}
	p := int(math.Round(float64(totalMinutes) * 100 / (durationHours * 60)))
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p, nil
}

// ApplyTime добавляет minutes к накопленному времени курса и пересчитывает
// производные поля. Время только прибавляется, прогресс не убывает.
// Переходы статуса: первый вклад выводит курс из Not Started и фиксирует
// start_date = date; достижение 100% завершает курс и фиксирует
// completion_date = date, даже без явного патча статуса.
func ApplyTime(c *models.Course, minutes int, date, now string) error {
	p, err := Percent(c.TotalTimeSpent+minutes, c.DurationHours)
	if err != nil {
		return err
	}

	c.TotalTimeSpent += minutes
	c.Progress = p

	if c.Status == models.StatusNotStarted {
		c.Status = models.StatusInProgress
		d := date
		c.StartDate = &d
	}

	if p >= 100 {
		c.Status = models.StatusCompleted
		d := date
		c.CompletionDate = &d
	}

	c.UpdatedAt = now
	return nil
}

// ReverseTime откатывает ранее учтённый вклад времени (при замещении дневника
// за дату). Корректируются только накопленное время и прогресс; статус и даты
// начала/завершения назад не откатываются.
func ReverseTime(c *models.Course, minutes int, now string) error {
	total := c.TotalTimeSpent - minutes
	if total < 0 {
		total = 0
	}

	p, err := Percent(total, c.DurationHours)
	if err != nil {
		return err
	}

	c.TotalTimeSpent = total
	c.Progress = p
	c.UpdatedAt = now
	return nil
}

// ApplyPatch применяет явный патч прогресса/статуса.
// start_date проставляется один раз — при первом переходе в In Progress с
// ненулевым прогрессом. Прогресс 100 либо статус Completed форсируют
// завершение, а completion_date намеренно переставляется на today при каждом
// таком вызове.
func ApplyPatch(c *models.Course, prog int, status, today, now string) {
	c.Progress = prog
	c.Status = status

	if status == models.StatusInProgress && prog > 0 && c.StartDate == nil {
		d := today
		c.StartDate = &d
	}

	if prog == 100 || status == models.StatusCompleted {
		c.Progress = 100
		c.Status = models.StatusCompleted
		d := today
		c.CompletionDate = &d
	}

	c.UpdatedAt = now
}
