package apkinblob

import "path"

func APKKey(id string) string {
	return path.Join(id, "app.apk")
}

func InspectionKey(id string) string {
	return path.Join(id, "inspection.json")
}

func IconKey(id string) string {
	return path.Join(id, "icon.png")
}
