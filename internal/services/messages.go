package services

import "fmt"

// All user-facing copy lives here so the deployment locale can be swapped in
// one place. The reference deployment is Vietnamese; the planning logic never
// inspects these strings.

const msgNoPlaces = "Hiện tại chưa có địa điểm phù hợp trong database cho thành phố này."

func fallbackNotes(city, timeSlot string) string {
	return fmt.Sprintf("Kế hoạch du lịch tại %s cho khung giờ %s. Hãy kiểm tra giờ mở cửa và đặt chỗ trước!", city, timeSlot)
}

func fallbackItemNote(name, area string) string {
	return fmt.Sprintf("Khám phá %s tại %s. Hãy kiểm tra giờ mở cửa và đặt chỗ trước!", name, area)
}
