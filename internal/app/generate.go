package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

// Guide sections the generator knows how to fill.
const (
	SectionWelcome      = "welcome"
	SectionAccess       = "access"
	SectionEquipment    = "equipment"
	SectionNeighborhood = "neighborhood"
	SectionCheckout     = "checkout"
	SectionEmergency    = "emergency"
)

// Generator produces canned guide content after a configurable delay that
// stands in for a model round trip.
type Generator struct {
	delay time.Duration
}

func NewGenerator(delay time.Duration) *Generator {
	return &Generator{delay: delay}
}

// Generate returns the content for one section, personalized with the
// property's fields. The wait is cancelable through ctx.
func (g *Generator) Generate(ctx context.Context, section string, p domain.Property, lang string) (string, error) {
	if err := wait(ctx, g.delay); err != nil {
		return "", err
	}
	switch section {
	case SectionWelcome:
		return fmt.Sprintf(welcomeContent, p.Type, p.Name), nil
	case SectionAccess:
		return fmt.Sprintf(accessContent, p.Address), nil
	case SectionEquipment:
		return fmt.Sprintf(equipmentContent, p.Bedrooms, p.Bathrooms, p.Name), nil
	case SectionNeighborhood:
		return neighborhoodContent, nil
	case SectionCheckout:
		return checkoutContent, nil
	case SectionEmergency:
		return domain.Strings(lang).EmergencyNumbers, nil
	default:
		return "", &domain.ValidationError{Field: "section", Reason: fmt.Sprintf("unknown guide section %q", section)}
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

const welcomeContent = `Bienvenue dans notre magnifique %s "%s" !

Nous sommes ravis de vous accueillir et avons tout préparé pour que votre séjour soit inoubliable. Ce guide contient toutes les informations nécessaires pour profiter pleinement de votre séjour.

N'hésitez pas à nous contacter si vous avez besoin de quoi que ce soit. Nous sommes là pour vous aider !`

const accessContent = `📍 Adresse : %s

🔑 Récupération des clés :
- Une boîte à clés sécurisée est située à gauche de la porte d'entrée
- Code : [sera envoyé 24h avant votre arrivée]
- Les clés sont à l'intérieur dans une pochette bleue

🚗 Parking :
- Place de parking privée disponible
- Numéro de place : A12
- Accès par badge inclus avec les clés

🚪 Accès au bâtiment :
- Code porte : [sera envoyé avec le code de la boîte à clés]
- Appartement au 3ème étage
- Ascenseur disponible`

const equipmentContent = `🛏️ Chambres (%d) :
- Literie haut de gamme
- Oreillers supplémentaires dans les placards
- Couvertures dans l'armoire

🚿 Salle de bain (%d) :
- Serviettes fournies
- Sèche-cheveux
- Gel douche et shampoing
- Papier toilette

🍳 Cuisine équipée :
- Réfrigérateur/congélateur
- Four et micro-ondes
- Lave-vaisselle
- Machine à café Nespresso
- Bouilloire et grille-pain
- Ustensiles complets

📶 WiFi :
- Réseau : %s_WiFi
- Mot de passe : [voir carte sur le frigo]

🧺 Autres équipements :
- Lave-linge
- Fer et planche à repasser
- Aspirateur
- Climatisation`

const neighborhoodContent = `🏖️ Plages à proximité :
- Plage de la Promenade : 5 min à pied
- Plage privée "Blue Beach" : 10 min

🛒 Commerces :
- Supermarché Carrefour : 2 min à pied
- Boulangerie "Au Bon Pain" : face à l'immeuble
- Pharmacie : 3 min à pied

🍽️ Restaurants recommandés :
- "La Petite Maison" - Cuisine méditerranéenne (5 min)
- "Chez Antoine" - Spécialités niçoises (7 min)
- "Sushi Zen" - Japonais (10 min)

🚇 Transports :
- Arrêt de bus : 2 min (lignes 12, 23, 52)
- Station de tram : 8 min
- Gare SNCF : 15 min en bus

🏛️ À visiter :
- Vieux Nice : 15 min à pied
- Promenade des Anglais : 5 min
- Musée d'Art Moderne : 20 min
- Château de Nice : 25 min`

const checkoutContent = `📅 Heure de départ : 11h00

✅ Check-list avant de partir :
☐ Retirer tous vos effets personnels
☐ Vérifier les placards et tiroirs
☐ Nettoyer la vaisselle utilisée
☐ Jeter les poubelles (conteneurs dans la cour)
☐ Fermer toutes les fenêtres
☐ Éteindre tous les appareils électriques
☐ Régler le chauffage/clim sur 20°C
☐ Remettre les clés dans la boîte

🗑️ Tri des déchets :
- Bac jaune : recyclables
- Bac vert : ordures ménagères
- Bac bleu : verre

💝 Merci de :
- Laisser le logement dans l'état où vous l'avez trouvé
- Signaler tout problème ou casse
- Laisser un avis sur la plateforme

Nous espérons que vous avez passé un excellent séjour !`
