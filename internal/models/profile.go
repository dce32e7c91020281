package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Verifications struct {
	BusinessEmail         bool `bson:"businessEmail,omitempty" json:"businessEmail,omitempty"`
	BusinessRegistration  bool `bson:"businessRegistration,omitempty" json:"businessRegistration,omitempty"`
	RepresentativeProfile bool `bson:"representativeProfile,omitempty" json:"representativeProfile,omitempty"`
}

type Certification struct {
	Name      string `bson:"name" json:"name" validate:"required"`
	Icon      string `bson:"icon,omitempty" json:"icon,omitempty"`
	ValidFrom string `bson:"validFrom,omitempty" json:"validFrom,omitempty"`
	ValidTo   string `bson:"validTo,omitempty" json:"validTo,omitempty"`
}

type ImportExport struct {
	Shipments       int    `bson:"shipments,omitempty" json:"shipments,omitempty"`
	Suppliers       int    `bson:"suppliers,omitempty" json:"suppliers,omitempty"`
	Volume          string `bson:"volume,omitempty" json:"volume,omitempty"`
	ExportShipments int    `bson:"exportShipments,omitempty" json:"exportShipments,omitempty"`
	ExportSuppliers int    `bson:"exportSuppliers,omitempty" json:"exportSuppliers,omitempty"`
	ExportVolume    string `bson:"exportVolume,omitempty" json:"exportVolume,omitempty"`
}

// Profile is a company record addressed externally by ProfileID. The Mongo
// ObjectID stays internal and is never used as the public key.
type Profile struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProfileID        string             `bson:"profileId" json:"profileId" validate:"required"`
	BusinessName     string             `bson:"businessName" json:"businessName" validate:"required"`
	Logo             string             `bson:"logo" json:"logo" validate:"required"`
	CoverImage       string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	IsPro            bool               `bson:"isPro" json:"isPro"`
	IsVerified       bool               `bson:"isVerified" json:"isVerified"`
	Revenue          string             `bson:"revenue,omitempty" json:"revenue,omitempty"`
	EmployeeCount    string             `bson:"employeeCount,omitempty" json:"employeeCount,omitempty"`
	BusinessOverview string             `bson:"businessOverview" json:"businessOverview" validate:"required"`
	BusinessType     string             `bson:"businessType" json:"businessType" validate:"required"`
	Origin           string             `bson:"origin,omitempty" json:"origin,omitempty"`
	Established      int                `bson:"established" json:"established" validate:"required"`
	ExportVolume     string             `bson:"exportVolume,omitempty" json:"exportVolume,omitempty"`
	Website          string             `bson:"website,omitempty" json:"website,omitempty"`
	Address          string             `bson:"address" json:"address" validate:"required"`
	Mobile           string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Owner            string             `bson:"owner" json:"owner" validate:"required"`
	Verifications    *Verifications     `bson:"verifications,omitempty" json:"verifications,omitempty"`
	Certifications   []Certification    `bson:"certifications,omitempty" json:"certifications,omitempty"`
	ImportExport     *ImportExport      `bson:"importExport,omitempty" json:"importExport,omitempty"`
}
