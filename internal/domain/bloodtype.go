package domain

import "fmt"

type BloodType string

const (
	BloodAPos  BloodType = "A+"
	BloodANeg  BloodType = "A-"
	BloodBPos  BloodType = "B+"
	BloodBNeg  BloodType = "B-"
	BloodABPos BloodType = "AB+"
	BloodABNeg BloodType = "AB-"
	BloodOPos  BloodType = "O+"
	BloodONeg  BloodType = "O-"
)

// BloodTypes lists every supported group, in inventory-counter order.
var BloodTypes = []BloodType{
	BloodAPos, BloodANeg,
	BloodBPos, BloodBNeg,
	BloodABPos, BloodABNeg,
	BloodOPos, BloodONeg,
}

func ParseBloodType(s string) (BloodType, error) {
	switch BloodType(s) {
	case BloodAPos, BloodANeg, BloodBPos, BloodBNeg,
		BloodABPos, BloodABNeg, BloodOPos, BloodONeg:
		return BloodType(s), nil
	}
	return "", fmt.Errorf("unknown blood type %q", s)
}

func (b BloodType) Valid() bool {
	_, err := ParseBloodType(string(b))
	return err == nil
}
